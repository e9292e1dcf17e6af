package tui

import (
	"time"

	"github.com/MKhiriev/go-leave-tracker/internal/page"
	"github.com/MKhiriev/go-leave-tracker/models"
)

// snapshotInterval is how often the page rereads the shared leave list, which
// the background refresh worker may update at any time.
const snapshotInterval = 500 * time.Millisecond

// statusTTL is how long a transient status line stays visible.
const statusTTL = 3 * time.Second

type snapshotTickMsg struct {
	id int
}

type refreshDoneMsg struct {
	err error
}

type sidePanelMsg struct {
	balance *models.LeaveBalance
	session page.Session
	version string
}

type createDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}

// sessionChangedMsg is sent to the leave page after sign in or sign out.
type sessionChangedMsg struct{}

type signInResultMsg struct {
	session models.Session
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

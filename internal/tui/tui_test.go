package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-leave-tracker/internal/app"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/service"
	"github.com/MKhiriev/go-leave-tracker/internal/store"
	"github.com/MKhiriev/go-leave-tracker/internal/validators"
	"github.com/MKhiriev/go-leave-tracker/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeLeaveList struct {
	snapshot  service.LeaveListSnapshot
	created   []models.CreateLeaveRequest
	deleted   []int64
	createErr error
	deleteErr error
}

func (f *fakeLeaveList) Snapshot() service.LeaveListSnapshot { return f.snapshot }

func (f *fakeLeaveList) Refresh(context.Context) error { return nil }

func (f *fakeLeaveList) Create(_ context.Context, req models.CreateLeaveRequest) (models.LeaveRequest, error) {
	f.created = append(f.created, req)
	return models.LeaveRequest{}, f.createErr
}

func (f *fakeLeaveList) Delete(_ context.Context, id int64) (models.LeaveRequest, error) {
	f.deleted = append(f.deleted, id)
	return models.LeaveRequest{ID: id}, f.deleteErr
}

type fakeAuth struct {
	session   models.Session
	signInErr error
	signedOut bool
}

func (f *fakeAuth) SignIn(_ context.Context, name string) (models.Session, error) {
	if f.signInErr != nil {
		return models.Session{}, f.signInErr
	}
	f.session = models.Session{SignedIn: true, Name: name}
	return f.session, nil
}

func (f *fakeAuth) SignOut(context.Context) error {
	f.signedOut = true
	f.session = models.Session{}
	return nil
}

func (f *fakeAuth) Session() models.Session { return f.session }

func (f *fakeAuth) SecretMessage(context.Context) (string, error) {
	if !f.session.SignedIn {
		return "", service.ErrUnauthorized
	}
	return "psst", nil
}

type fakeInfo struct{}

func (fakeInfo) Balance(_ context.Context, name string) (models.LeaveBalance, error) {
	return models.LeaveBalance{Name: name, Allowance: 14, Used: 3, Remaining: 11}, nil
}

func (fakeInfo) Greeting(_ context.Context, text string) (string, error) { return "Hello " + text, nil }

func (fakeInfo) Version(context.Context) (string, error) { return "1.0.0", nil }

func newTestPage(leaves *fakeLeaveList, auth *fakeAuth) *LeavePageModel {
	m := NewLeavePageModel(context.Background(), &service.ClientServices{
		LeaveList:   leaves,
		AuthService: auth,
		InfoService: fakeInfo{},
	}, logger.Nop())
	m.readSnapshot()
	return m
}

func aliceSnapshot() service.LeaveListSnapshot {
	return service.LeaveListSnapshot{
		Loaded: true,
		Leaves: []models.LeaveRequest{
			{ID: 1, Name: "Alice", StartDate: models.NewDate(2024, time.January, 10), EndDate: models.NewDate(2024, time.January, 12), Reason: "Travel"},
			{ID: 2, Name: "Bob", StartDate: models.NewDate(2024, time.March, 1), EndDate: models.NewDate(2024, time.March, 1), Reason: "Doctor"},
		},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m tea.Model, s string) {
	for _, r := range s {
		m.Update(runes(string(r)))
	}
}

// ─────────────────────────────────────────────
// Leave page
// ─────────────────────────────────────────────

func TestLeavePage_RendersRowsAndSignedOutPanel(t *testing.T) {
	m := newTestPage(&fakeLeaveList{snapshot: aliceSnapshot()}, &fakeAuth{})

	out := m.View()

	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "10-01-2024")
	assert.Contains(t, out, "12-01-2024")
	assert.Contains(t, out, "Doctor")
	assert.Contains(t, out, "[s] Sign in")
	assert.NotContains(t, out, "Total Leave Balance")
}

func TestLeavePage_LoadingText(t *testing.T) {
	m := newTestPage(&fakeLeaveList{snapshot: service.LeaveListSnapshot{Loading: true}}, &fakeAuth{})

	assert.Contains(t, m.View(), app.MsgLoadingLeaves)
}

func TestLeavePage_ListErrorIsHumanized(t *testing.T) {
	m := newTestPage(&fakeLeaveList{snapshot: service.LeaveListSnapshot{
		Err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"),
	}}, &fakeAuth{})

	assert.Contains(t, m.View(), msgServerUnavailable)
}

func TestLeavePage_CursorStaysInRange(t *testing.T) {
	m := newTestPage(&fakeLeaveList{snapshot: aliceSnapshot()}, &fakeAuth{})

	m.Update(runes("j"))
	m.Update(runes("j"))
	m.Update(runes("j"))
	assert.Equal(t, 1, m.cursor)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)
}

func TestLeavePage_CreateSubmitsRawFormValues(t *testing.T) {
	leaves := &fakeLeaveList{snapshot: aliceSnapshot()}
	m := newTestPage(leaves, &fakeAuth{})

	m.Update(runes("n"))
	require.Equal(t, modeForm, m.mode)

	typeText(m, "Carol")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "2024-05-01")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "2024-05-03")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "Vacation")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.form.submitting)

	msg := cmd()
	require.IsType(t, createDoneMsg{}, msg)
	require.Len(t, leaves.created, 1)
	assert.Equal(t, models.CreateLeaveRequest{
		Name:      "Carol",
		StartDate: "2024-05-01",
		EndDate:   "2024-05-03",
		Reason:    "Vacation",
	}, leaves.created[0])

	m.Update(msg)
	assert.Equal(t, modeList, m.mode)
	assert.Empty(t, m.form.form().Name)
	assert.Empty(t, m.createError)
}

func TestLeavePage_CreateErrorShowsRawMessageAndKeepsForm(t *testing.T) {
	leaves := &fakeLeaveList{createErr: validators.NewFieldError(validators.FieldStartDate, "Invalid date")}
	m := newTestPage(leaves, &fakeAuth{})

	m.Update(runes("n"))
	typeText(m, "Carol")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(cmd())

	assert.Equal(t, modeForm, m.mode)
	assert.Equal(t, "Carol", m.form.form().Name)
	assert.Contains(t, m.View(), "startDate: Invalid date")
}

func TestLeavePage_FormEscCancels(t *testing.T) {
	m := newTestPage(&fakeLeaveList{}, &fakeAuth{})

	m.Update(runes("n"))
	typeText(m, "q")
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "q", m.form.form().Name, "typing q in the form must not quit")
}

func TestLeavePage_Delete(t *testing.T) {
	tests := []struct {
		name      string
		deleteErr error
		wantError string
	}{
		{name: "success"},
		{
			name:      "field error shows first message",
			deleteErr: validators.NewFieldError(validators.FieldID, "Expected a positive number"),
			wantError: "Expected a positive number",
		},
		{
			name:      "other error shows generic message",
			deleteErr: fmt.Errorf("%w: id 2", store.ErrLeaveNotFound),
			wantError: app.MsgFailedToDeleteLeave,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaves := &fakeLeaveList{snapshot: aliceSnapshot(), deleteErr: tt.deleteErr}
			m := newTestPage(leaves, &fakeAuth{})

			m.Update(runes("j"))
			m.Update(runes("d"))
			require.Equal(t, modeConfirmDelete, m.mode)
			assert.Contains(t, m.View(), `Delete leave of "Bob"?`)

			_, cmd := m.Update(runes("y"))
			require.NotNil(t, cmd)
			m.Update(cmd())

			assert.Equal(t, []int64{2}, leaves.deleted)
			assert.Equal(t, modeList, m.mode)
			assert.Equal(t, tt.wantError, m.deleteError)
		})
	}
}

func TestLeavePage_DeleteCancelled(t *testing.T) {
	leaves := &fakeLeaveList{snapshot: aliceSnapshot()}
	m := newTestPage(leaves, &fakeAuth{})

	m.Update(runes("d"))
	_, cmd := m.Update(runes("n"))

	assert.Nil(t, cmd)
	assert.Equal(t, modeList, m.mode)
	assert.Empty(t, leaves.deleted)
}

func TestLeavePage_CopyRow(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	m := newTestPage(&fakeLeaveList{snapshot: aliceSnapshot()}, &fakeAuth{})

	_, cmd := m.Update(runes("c"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, "Alice\t10-01-2024\t12-01-2024\tTravel", copied)
	assert.Equal(t, "Copied to clipboard", m.status)

	m.Update(clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestLeavePage_SidePanelSignedIn(t *testing.T) {
	auth := &fakeAuth{session: models.Session{SignedIn: true, Name: "Alice"}}
	m := newTestPage(&fakeLeaveList{snapshot: aliceSnapshot()}, auth)

	m.Update(m.cmdSidePanel()())
	out := m.View()

	assert.Contains(t, out, "Total Leave Balance: 11 of 14 days")
	assert.Contains(t, out, app.MsgLoggedInAs+"Alice")
	assert.Contains(t, out, "Hello Alice")
	assert.Contains(t, out, "psst")
	assert.Contains(t, out, "[s] Sign out")
	assert.Contains(t, out, "v1.0.0")
}

func TestLeavePage_SignOutToggle(t *testing.T) {
	auth := &fakeAuth{session: models.Session{SignedIn: true, Name: "Alice"}}
	m := newTestPage(&fakeLeaveList{}, auth)

	_, cmd := m.Update(runes("s"))
	require.NotNil(t, cmd)

	assert.Equal(t, sessionChangedMsg{}, cmd())
	assert.True(t, auth.signedOut)
}

func TestLeavePage_SignInNavigates(t *testing.T) {
	m := newTestPage(&fakeLeaveList{}, &fakeAuth{})

	_, cmd := m.Update(runes("s"))
	require.NotNil(t, cmd)

	assert.Equal(t, NavigateTo{Page: pageSignIn}, cmd())
}

func TestLeavePage_StaleSnapshotTickIgnored(t *testing.T) {
	leaves := &fakeLeaveList{}
	m := newTestPage(leaves, &fakeAuth{})
	m.Update(sessionChangedMsg{})

	leaves.snapshot = aliceSnapshot()
	_, cmd := m.Update(snapshotTickMsg{id: 0})
	assert.Nil(t, cmd)
	assert.Empty(t, m.snapshot.Leaves)

	_, cmd = m.Update(snapshotTickMsg{id: 1})
	assert.NotNil(t, cmd)
	assert.Len(t, m.snapshot.Leaves, 2)
}

// ─────────────────────────────────────────────
// Sign in
// ─────────────────────────────────────────────

func TestSignIn_EmptyName(t *testing.T) {
	m := NewSignInModel(context.Background(), &fakeAuth{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Name is required")
}

func TestSignIn_Success(t *testing.T) {
	auth := &fakeAuth{}
	m := NewSignInModel(context.Background(), auth)

	typeText(m, " Alice ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, next := m.Update(cmd())
	require.NotNil(t, next)
	assert.Equal(t, NavigateTo{Page: pageLeaves, Payload: sessionChangedMsg{}}, next())
	assert.Equal(t, "Alice", auth.session.Name)
}

func TestSignIn_ServerUnavailable(t *testing.T) {
	auth := &fakeAuth{signInErr: errors.New("Post \"http://localhost:8080\": dial tcp: connection refused")}
	m := NewSignInModel(context.Background(), auth)

	typeText(m, "Alice")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(cmd())

	assert.Contains(t, m.View(), msgServerUnavailable)
}

// ─────────────────────────────────────────────
// Root model
// ─────────────────────────────────────────────

func newTestRoot() RootModel {
	ctx := context.Background()
	auth := &fakeAuth{}
	pages := map[string]tea.Model{
		pageLeaves: newTestPage(&fakeLeaveList{snapshot: aliceSnapshot()}, auth),
		pageSignIn: NewSignInModel(ctx, auth),
	}
	return NewRootModel(pages, pageLeaves, models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"))
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	updated, cmd := newTestRoot().Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.True(t, updated.(RootModel).quitByUser)
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	updated, _ := newTestRoot().Update(runes("v"))
	root := updated.(RootModel)

	require.True(t, root.showBuildInfo)
	assert.Contains(t, root.View(), "1.2.3")
	assert.Contains(t, root.View(), "abc123")

	updated, _ = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, updated.(RootModel).showBuildInfo)
}

func TestRootModel_BuildInfoKeyIgnoredInForm(t *testing.T) {
	root := newTestRoot()
	updated, _ := root.Update(runes("n"))
	updated, _ = updated.Update(runes("v"))

	r := updated.(RootModel)
	assert.False(t, r.showBuildInfo)
	assert.Equal(t, "v", r.current.(*LeavePageModel).form.form().Name)
}

func TestRootModel_NavigateTo(t *testing.T) {
	updated, _ := newTestRoot().Update(NavigateTo{Page: pageSignIn})
	root := updated.(RootModel)
	assert.IsType(t, &SignInModel{}, root.current)

	updated, cmd := root.Update(NavigateTo{Page: pageLeaves, Payload: sessionChangedMsg{}})
	assert.IsType(t, &LeavePageModel{}, updated.(RootModel).current)
	require.NotNil(t, cmd)
	assert.Equal(t, sessionChangedMsg{}, cmd())

	updated, _ = updated.Update(NavigateTo{Page: "missing"})
	assert.IsType(t, &LeavePageModel{}, updated.(RootModel).current)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func TestHumanizeServerUnavailableError(t *testing.T) {
	assert.Empty(t, humanizeServerUnavailableError(nil))
	assert.Equal(t, msgServerUnavailable, humanizeServerUnavailableError(errors.New("context deadline exceeded")))
	assert.Equal(t, "leave request was not found", humanizeServerUnavailableError(store.ErrLeaveNotFound))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "Zoë...", fitText("Zoë Washburne", 6))
}

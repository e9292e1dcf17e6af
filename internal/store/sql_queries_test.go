// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-leave-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListLeavesQuery(t *testing.T) {
	tests := []struct {
		name      string
		dialect   Dialect
		filter    string
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "all leaves",
			dialect:   DialectPostgres,
			wantQuery: "SELECT id, name, start_date, end_date, reason, created_at FROM leaves",
		},
		{
			name:      "by name postgres",
			dialect:   DialectPostgres,
			filter:    "Alice",
			wantQuery: "SELECT id, name, start_date, end_date, reason, created_at FROM leaves WHERE name = $1",
			wantArgs:  []any{"Alice"},
		},
		{
			name:      "by name sqlite",
			dialect:   DialectSQLite,
			filter:    "Alice",
			wantQuery: "SELECT id, name, start_date, end_date, reason, created_at FROM leaves WHERE name = ?",
			wantArgs:  []any{"Alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListLeavesQuery(tt.dialect, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func Test_buildCreateLeaveQuery(t *testing.T) {
	leave := models.LeaveRequest{
		ID:        42, // ignored, the store assigns ids
		Name:      "Alice",
		StartDate: models.NewDate(2024, time.January, 10),
		EndDate:   models.NewDate(2024, time.January, 12),
		Reason:    "Travel",
	}

	query, args, err := buildCreateLeaveQuery(DialectPostgres, leave)
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO leaves (name,start_date,end_date,reason) VALUES ($1,$2,$3,$4) RETURNING id, name, start_date, end_date, reason, created_at",
		query)
	assert.Equal(t, []any{"Alice", leave.StartDate, leave.EndDate, "Travel"}, args)

	query, _, err = buildCreateLeaveQuery(DialectSQLite, leave)
	require.NoError(t, err)
	assert.Contains(t, query, "VALUES (?,?,?,?)")
}

func Test_buildDeleteLeaveQuery(t *testing.T) {
	query, args, err := buildDeleteLeaveQuery(DialectPostgres, 5)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM leaves WHERE id = $1 RETURNING id, name, start_date, end_date, reason, created_at", query)
	assert.Equal(t, []any{int64(5)}, args)
}

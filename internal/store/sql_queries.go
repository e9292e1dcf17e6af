package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-leave-tracker/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	leavesTable = "leaves"

	columnID        = "id"
	columnName      = "name"
	columnStartDate = "start_date"
	columnEndDate   = "end_date"
	columnReason    = "reason"
	columnCreatedAt = "created_at"
)

// leaveColumns is the scan order used by scanLeave.
var leaveColumns = []string{columnID, columnName, columnStartDate, columnEndDate, columnReason, columnCreatedAt}

func returningLeaveColumns() string {
	return "RETURNING " + strings.Join(leaveColumns, ", ")
}

func statementBuilder(dialect Dialect) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(dialect.placeholder())
}

// buildListLeavesQuery selects every leave, or only those of name when it is
// not empty. No ORDER BY is added; callers get store order.
func buildListLeavesQuery(dialect Dialect, name string) (string, []any, error) {
	builder := statementBuilder(dialect).
		Select(leaveColumns...).
		From(leavesTable)

	if name != "" {
		builder = builder.Where(sq.Eq{columnName: name})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreateLeaveQuery(dialect Dialect, leave models.LeaveRequest) (string, []any, error) {
	query, args, err := statementBuilder(dialect).
		Insert(leavesTable).
		Columns(columnName, columnStartDate, columnEndDate, columnReason).
		Values(leave.Name, leave.StartDate, leave.EndDate, leave.Reason).
		Suffix(returningLeaveColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteLeaveQuery(dialect Dialect, id int64) (string, []any, error) {
	query, args, err := statementBuilder(dialect).
		Delete(leavesTable).
		Where(sq.Eq{columnID: id}).
		Suffix(returningLeaveColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

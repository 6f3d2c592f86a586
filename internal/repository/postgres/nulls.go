package postgres

import (
	"database/sql"

	"warehouseapi/internal/model"
)

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func float64Ptr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func datePtr(t sql.NullTime) *model.Date {
	if !t.Valid {
		return nil
	}
	return model.NewDate(t.Time)
}

func dateTimePtr(t sql.NullTime) *model.DateTime {
	if !t.Valid {
		return nil
	}
	return model.NewDateTime(t.Time)
}

func clockPtr(t sql.NullTime) *model.Clock {
	if !t.Valid {
		return nil
	}
	return model.NewClock(t.Time)
}

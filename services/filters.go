package services

import (
	"strings"
	"time"

	"github.com/yeremiapane/crm-backend/utils"
	"gorm.io/gorm"
)

// Scope narrows a query. Scopes passed to gorm's Scopes are combined with AND.
type Scope = func(*gorm.DB) *gorm.DB

// Search matches term as a case-insensitive substring of any of the columns.
func Search(term string, columns ...string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		like := "%" + strings.ToLower(term) + "%"
		conds := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			conds[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = like
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

func FieldEquals(column, value string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

// CreatedBetween keeps rows with start <= created_at < end.
func CreatedBetween(start, end time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("created_at >= ? AND created_at < ?", start, end)
	}
}

func CreatedThisMonth(now time.Time) Scope {
	return CreatedBetween(utils.MonthRange(now))
}

func CreatedThisWeek(now time.Time) Scope {
	return CreatedBetween(utils.WeekRange(now))
}

func NewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

type EnquiryFilter struct {
	Search      string
	Status      string
	InquiryType string
	Product     string
	ThisMonth   bool
	ThisWeek    bool
}

// Scopes maps every set field to its predicate. now anchors the calendar
// windows.
func (f EnquiryFilter) Scopes(now time.Time) []Scope {
	var scopes []Scope
	if f.Search != "" {
		scopes = append(scopes, Search(f.Search, "name", "phone", "location", "message"))
	}
	if f.Status != "" {
		scopes = append(scopes, FieldEquals("status", f.Status))
	}
	if f.InquiryType != "" {
		scopes = append(scopes, FieldEquals("inquiry_type", f.InquiryType))
	}
	if f.Product != "" {
		scopes = append(scopes, FieldEquals("product", f.Product))
	}
	if f.ThisMonth {
		scopes = append(scopes, CreatedThisMonth(now))
	}
	if f.ThisWeek {
		scopes = append(scopes, CreatedThisWeek(now))
	}
	return scopes
}

type PickupFilter struct {
	Search string
	Status string
}

func (f PickupFilter) Scopes() []Scope {
	var scopes []Scope
	if f.Search != "" {
		scopes = append(scopes, Search(f.Search, "customer_name", "phone", "address", "product"))
	}
	if f.Status != "" {
		scopes = append(scopes, FieldEquals("status", f.Status))
	}
	return scopes
}

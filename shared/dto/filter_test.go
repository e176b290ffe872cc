package dto_test

import (
	"testing"

	"inn/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArgs   map[string]any
	}{
		{
			name: "equality",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorEq,
				Value:    "confirmed",
				Table:    "bookings",
			},
			wantClause: "bookings.status = :status",
			wantArgs:   map[string]any{"status": "confirmed"},
		},
		{
			name: "not equal",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorNotEq,
				Value:    "maintenance",
				Table:    "rooms",
			},
			wantClause: "rooms.status != :status",
			wantArgs:   map[string]any{"status": "maintenance"},
		},
		{
			name: "strict less than",
			filter: dto.Filter{
				Field:    "check_in_date",
				Operator: dto.FilterOperatorLess,
				Value:    "2026-09-12",
				Table:    "bookings",
			},
			wantClause: "bookings.check_in_date < :check_in_date",
			wantArgs:   map[string]any{"check_in_date": "2026-09-12"},
		},
		{
			name: "strict greater than",
			filter: dto.Filter{
				Field:    "check_out_date",
				Operator: dto.FilterOperatorGreater,
				Value:    "2026-09-10",
				Table:    "bookings",
			},
			wantClause: "bookings.check_out_date > :check_out_date",
			wantArgs:   map[string]any{"check_out_date": "2026-09-10"},
		},
		{
			name: "greater or equal",
			filter: dto.Filter{
				Field:    "max_guests",
				Operator: dto.FilterOperatorGreaterEq,
				Value:    2,
				Table:    "rooms",
			},
			wantClause: "rooms.max_guests >= :max_guests",
			wantArgs:   map[string]any{"max_guests": 2},
		},
		{
			name: "less or equal",
			filter: dto.Filter{
				Field:    "price_per_night",
				Operator: dto.FilterOperatorLessEq,
				Value:    200.0,
				Table:    "rooms",
			},
			wantClause: "rooms.price_per_night <= :price_per_night",
			wantArgs:   map[string]any{"price_per_night": 200.0},
		},
		{
			name: "no table prefix",
			filter: dto.Filter{
				Field:    "id",
				Operator: dto.FilterOperatorEq,
				Value:    "room-1",
			},
			wantClause: "id = :id",
			wantArgs:   map[string]any{"id": "room-1"},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "requested_check_in",
				Field:    "check_out_date",
				Operator: dto.FilterOperatorGreater,
				Value:    "2026-09-10",
				Table:    "bookings",
			},
			wantClause: "bookings.check_out_date > :requested_check_in",
			wantArgs:   map[string]any{"requested_check_in": "2026-09-10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			if clause != tt.wantClause {
				t.Errorf("expected clause %q, got %q", tt.wantClause, clause)
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}

			for name, want := range tt.wantArgs {
				if got, ok := args[name]; !ok {
					t.Errorf("expected arg %s to exist", name)
				} else if got != want {
					t.Errorf("expected arg %s to be %v, got %v", name, want, got)
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorEq,
				Value:    "confirmed",
				Table:    "bookings",
			},
			dto.Filter{
				Field:    "check_out_date",
				Operator: dto.FilterOperatorGreater,
				Value:    "2026-09-10",
				Table:    "bookings",
			},
			dto.Filter{
				Field:    "check_in_date",
				Operator: dto.FilterOperatorLess,
				Value:    "2026-09-12",
				Table:    "bookings",
			},
		},
	}

	clause, args := group.GetWhereClause()

	want := "(bookings.status = :status AND bookings.check_out_date > :check_out_date AND bookings.check_in_date < :check_in_date)"
	if clause != want {
		t.Errorf("expected clause %q, got %q", want, clause)
	}

	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d", len(args))
	}
}

func TestFilterGroup_GetWhereClause_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	clause, args := group.GetWhereClause()

	if clause != "" {
		t.Errorf("expected empty clause, got %q", clause)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %d", len(args))
	}
}

func TestFilterGroup_Nested(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "room_type",
				Operator: dto.FilterOperatorEq,
				Value:    "suite",
				Table:    "rooms",
			},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{
						Field:    "status",
						Operator: dto.FilterOperatorEq,
						Value:    "available",
						Table:    "rooms",
					},
					dto.Filter{
						Field:    "status",
						Operator: dto.FilterOperatorEq,
						Value:    "booked",
						Table:    "rooms",
						ArgName:  "status_booked",
					},
				},
			},
		},
	}

	clause, args := group.GetWhereClause()

	want := "(rooms.room_type = :room_type AND (rooms.status = :status OR rooms.status = :status_booked))"
	if clause != want {
		t.Errorf("expected clause %q, got %q", want, clause)
	}

	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d", len(args))
	}
}

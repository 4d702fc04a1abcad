package dto_test

import (
	"net/http"
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/dto"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := createdAt.Format(constant.DateFormat)
	expectedModifiedAt := modifiedAt.Format(constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "room_number",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "room_number",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    0,
				Limit:   0,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid limit parameter",
			queryParams: map[string]string{
				"limit": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    0,
				Limit:   0,
				SortBy:  "",
				SortDir: "DESC",
			},
		},
		{
			name: "with partial parameters and defaults enabled",
			queryParams: map[string]string{
				"page":    "3",
				"sort_by": "check_in",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    3,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "check_in",
				SortDir: "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseURL := "http://example.com/test"
			u, err := url.Parse(baseURL)
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest("GET", u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			if queryParams.Page != tt.expected.Page {
				t.Errorf("expected Page to be %d, got %d", tt.expected.Page, queryParams.Page)
			}
			if queryParams.Limit != tt.expected.Limit {
				t.Errorf("expected Limit to be %d, got %d", tt.expected.Limit, queryParams.Limit)
			}
			if queryParams.SortBy != tt.expected.SortBy {
				t.Errorf("expected SortBy to be %s, got %s", tt.expected.SortBy, queryParams.SortBy)
			}
			if queryParams.SortDir != tt.expected.SortDir {
				t.Errorf("expected SortDir to be %s, got %s", tt.expected.SortDir, queryParams.SortDir)
			}
		})
	}
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}
	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name: "eq with table prefix",
			filter: dto.Filter{
				Field:    "status",
				Value:    "available",
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
			expectedWhere: "rooms.status = :status",
			expectedArgs:  map[string]any{"status": "available"},
		},
		{
			name: "eq with custom arg name",
			filter: dto.Filter{
				ArgName:  "min_check_in",
				Field:    "check_in",
				Value:    "2026-06-01",
				Operator: dto.FilterOperatorEq,
			},
			expectedWhere: "check_in = :min_check_in",
			expectedArgs:  map[string]any{"min_check_in": "2026-06-01"},
		},
		{
			name: "in with slice expands to named args",
			filter: dto.Filter{
				Field:    "status",
				Value:    []string{"pending", "confirmed"},
				Operator: dto.FilterOperatorIn,
			},
			expectedWhere: "status IN (:status_0, :status_1) ",
			expectedArgs:  map[string]any{"status_0": "pending", "status_1": "confirmed"},
		},
		{
			name: "greater_eq",
			filter: dto.Filter{
				Field:    "price_per_night",
				Value:    50.0,
				Operator: dto.FilterOperatorGreaterEq,
			},
			expectedWhere: "price_per_night >= :price_per_night",
			expectedArgs:  map[string]any{"price_per_night": 50.0},
		},
		{
			name: "less_eq",
			filter: dto.Filter{
				Field:    "price_per_night",
				Value:    200.0,
				Operator: dto.FilterOperatorLessEq,
			},
			expectedWhere: "price_per_night <= :price_per_night",
			expectedArgs:  map[string]any{"price_per_night": 200.0},
		},
		{
			name: "less",
			filter: dto.Filter{
				Field:    "check_in",
				Value:    "2026-06-04",
				Operator: dto.FilterOperatorLess,
			},
			expectedWhere: "check_in < :check_in",
			expectedArgs:  map[string]any{"check_in": "2026-06-04"},
		},
		{
			name: "greater",
			filter: dto.Filter{
				Field:    "check_out",
				Value:    "2026-06-01",
				Operator: dto.FilterOperatorGreater,
			},
			expectedWhere: "check_out > :check_out",
			expectedArgs:  map[string]any{"check_out": "2026-06-01"},
		},
		{
			name: "not_eq",
			filter: dto.Filter{
				Field:    "status",
				Value:    "cancelled",
				Operator: dto.FilterOperatorNotEq,
			},
			expectedWhere: "status != :status",
			expectedArgs:  map[string]any{"status": "cancelled"},
		},
		{
			name: "is_null",
			filter: dto.Filter{
				Field:    "deleted_at",
				Operator: dto.FilterIsNull,
			},
			expectedWhere: "deleted_at IS NULL",
			expectedArgs:  map[string]any{},
		},
		{
			name: "unknown operator returns empty clause",
			filter: dto.Filter{
				Field:    "status",
				Value:    "available",
				Operator: "between",
			},
			expectedWhere: "",
			expectedArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.expectedWhere {
				t.Errorf("expected where clause %q, got %q", tt.expectedWhere, where)
			}
			if !reflect.DeepEqual(args, tt.expectedArgs) {
				t.Errorf("expected args %+v, got %+v", tt.expectedArgs, args)
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		group         dto.FilterGroup
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name:          "empty group",
			group:         dto.FilterGroup{},
			expectedWhere: "",
			expectedArgs:  map[string]any{},
		},
		{
			name: "default operator is AND",
			group: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "room_id", Value: "room-1", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "status", Value: "cancelled", Operator: dto.FilterOperatorNotEq},
				},
			},
			expectedWhere: "(room_id = :room_id AND status != :status)",
			expectedArgs:  map[string]any{"room_id": "room-1", "status": "cancelled"},
		},
		{
			name: "nested group with OR",
			group: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "user_id", Value: "user-1", Operator: dto.FilterOperatorEq},
					dto.FilterGroup{
						Operator: dto.FilterGroupOperatorOr,
						Filters: []any{
							dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
							dto.Filter{ArgName: "status_confirmed", Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
						},
					},
				},
			},
			expectedWhere: "(user_id = :user_id AND (status = :status OR status = :status_confirmed))",
			expectedArgs:  map[string]any{"user_id": "user-1", "status": "pending", "status_confirmed": "confirmed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()

			if where != tt.expectedWhere {
				t.Errorf("expected where clause %q, got %q", tt.expectedWhere, where)
			}
			if !reflect.DeepEqual(args, tt.expectedArgs) {
				t.Errorf("expected args %+v, got %+v", tt.expectedArgs, args)
			}
		})
	}
}

package listing

import (
	"testing"

	"github.com/dmaia/sweetshop/internal/core/serviceerrors"
)

func TestParse_Defaults(t *testing.T) {
	params, err := Parse(map[string]string{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if params.Page != DefaultPage || params.Limit != DefaultLimit {
		t.Fatalf("expected default pagination, got page=%d limit=%d", params.Page, params.Limit)
	}
	if len(params.Sort) != 1 || params.Sort[0].Field != DefaultSortField || !params.Sort[0].Desc {
		t.Fatalf("expected newest-first default sort, got %+v", params.Sort)
	}
	if len(params.Filters) != 0 {
		t.Fatalf("expected no filters, got %+v", params.Filters)
	}
}

func TestParse_Filters(t *testing.T) {
	t.Run("plain parameter becomes an equality filter", func(t *testing.T) {
		params, err := Parse(map[string]string{"name": "Choco Cake"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(params.Filters) != 1 {
			t.Fatalf("expected 1 filter, got %d", len(params.Filters))
		}
		f := params.Filters[0]
		if f.Field != "name" || f.Op != OpEq || f.Value != "Choco Cake" {
			t.Fatalf("unexpected filter %+v", f)
		}
	})

	t.Run("suffix syntax selects the comparison operator", func(t *testing.T) {
		params, err := Parse(map[string]string{"price[gte]": "200"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		f := params.Filters[0]
		if f.Field != "price" || f.Op != OpGTE {
			t.Fatalf("unexpected filter %+v", f)
		}
	})

	t.Run("numeric values stay numeric", func(t *testing.T) {
		params, _ := Parse(map[string]string{"price[lt]": "19.5"})
		if v, ok := params.Filters[0].Value.(float64); !ok || v != 19.5 {
			t.Fatalf("expected float64 19.5, got %T %v", params.Filters[0].Value, params.Filters[0].Value)
		}
	})

	t.Run("boolean values are coerced", func(t *testing.T) {
		params, _ := Parse(map[string]string{"inStock": "true"})
		if v, ok := params.Filters[0].Value.(bool); !ok || !v {
			t.Fatalf("expected bool true, got %T %v", params.Filters[0].Value, params.Filters[0].Value)
		}
	})

	t.Run("unknown operator is rejected", func(t *testing.T) {
		_, err := Parse(map[string]string{"price[between]": "1"})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("malformed bracket is rejected", func(t *testing.T) {
		_, err := Parse(map[string]string{"price[gte": "1"})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("control parameters never become filters", func(t *testing.T) {
		params, err := Parse(map[string]string{"page": "2", "limit": "5", "sort": "price", "fields": "name"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(params.Filters) != 0 {
			t.Fatalf("expected no filters, got %+v", params.Filters)
		}
	})
}

func TestParse_Sort(t *testing.T) {
	params, err := Parse(map[string]string{"sort": "-averageRating, price"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(params.Sort) != 2 {
		t.Fatalf("expected 2 sort keys, got %+v", params.Sort)
	}
	if params.Sort[0].Field != "averageRating" || !params.Sort[0].Desc {
		t.Fatalf("expected descending averageRating first, got %+v", params.Sort[0])
	}
	if params.Sort[1].Field != "price" || params.Sort[1].Desc {
		t.Fatalf("expected ascending price second, got %+v", params.Sort[1])
	}
}

func TestParse_Fields(t *testing.T) {
	params, err := Parse(map[string]string{"fields": "name, price ,averageRating,"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"name", "price", "averageRating"}
	if len(params.Fields) != len(want) {
		t.Fatalf("expected %v, got %v", want, params.Fields)
	}
	for i := range want {
		if params.Fields[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, params.Fields)
		}
	}
}

func TestParse_Pagination(t *testing.T) {
	t.Run("parses page and limit", func(t *testing.T) {
		params, err := Parse(map[string]string{"page": "3", "limit": "25"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if params.Page != 3 || params.Limit != 25 {
			t.Fatalf("expected page=3 limit=25, got page=%d limit=%d", params.Page, params.Limit)
		}
		if params.Skip() != 50 {
			t.Fatalf("expected skip 50, got %d", params.Skip())
		}
	})

	invalid := []map[string]string{
		{"page": "0"},
		{"page": "-1"},
		{"page": "two"},
		{"limit": "0"},
		{"limit": "nope"},
	}
	for _, raw := range invalid {
		if _, err := Parse(raw); !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("Parse(%v): expected KindInvalidRequest, got %v", raw, err)
		}
	}
}

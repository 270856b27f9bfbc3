package domain

import (
	"testing"
	"time"

	"github.com/dmaia/sweetshop/internal/core/serviceerrors"
)

func TestNewProduct(t *testing.T) {
	before := time.Now()
	p := NewProduct("Choco Cake", "Rich chocolate cake", "cover.jpeg", 29.99)
	after := time.Now()

	if p.Name != "Choco Cake" {
		t.Fatalf("expected name 'Choco Cake', got %q", p.Name)
	}
	if p.Slug != "choco-cake" {
		t.Fatalf("expected slug 'choco-cake', got %q", p.Slug)
	}
	if p.Price != 29.99 {
		t.Fatalf("expected price 29.99, got %v", p.Price)
	}
	if p.AverageRating != DefaultRating {
		t.Fatalf("expected default rating %v, got %v", DefaultRating, p.AverageRating)
	}
	if p.ID != "" {
		t.Fatalf("expected empty ID, got %q", p.ID)
	}
	if p.CreationDate.Before(before) || p.CreationDate.After(after) {
		t.Fatalf("CreationDate %v not in expected range [%v, %v]", p.CreationDate, before, after)
	}
}

func TestProduct_Rename(t *testing.T) {
	p := NewProduct("Choco Cake", "Rich", "cover.jpeg", 10)

	p.Rename("Choco Cake 2")

	if p.Name != "Choco Cake 2" {
		t.Fatalf("expected name 'Choco Cake 2', got %q", p.Name)
	}
	if p.Slug != "choco-cake-2" {
		t.Fatalf("expected slug 'choco-cake-2', got %q", p.Slug)
	}
}

func TestProduct_SetRating(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{4.76, 4.8},
		{4.74, 4.7},
		{4.666666, 4.7},
		{5, 5},
	}

	for _, tc := range cases {
		p := NewProduct("Choco Cake", "Rich", "cover.jpeg", 10)
		p.SetRating(tc.in)
		if p.AverageRating != tc.want {
			t.Fatalf("SetRating(%v): expected %v, got %v", tc.in, tc.want, p.AverageRating)
		}
	}
}

func TestProduct_Validate(t *testing.T) {
	valid := func() *Product {
		return NewProduct("Choco Cake", "Rich chocolate cake", "cover.jpeg", 29.99)
	}

	t.Run("accepts a well-formed product", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("discount at the price is unprocessable", func(t *testing.T) {
		p := valid()
		discount := p.Price
		p.PriceDiscount = &discount
		if err := p.Validate(); !serviceerrors.IsOfKind(err, serviceerrors.KindUnprocessableEntity) {
			t.Fatalf("expected KindUnprocessableEntity, got %v", err)
		}
	})

	discount := 29.99
	negativeRating := -1.0
	cases := []struct {
		name   string
		mutate func(*Product)
	}{
		{"name too short", func(p *Product) { p.Name = "abc" }},
		{"name too long", func(p *Product) { p.Name = "This Product Name Is Way Way Way Too Long For Us" }},
		{"non-positive price", func(p *Product) { p.Price = 0 }},
		{"discount at the price", func(p *Product) { p.PriceDiscount = &discount }},
		{"rating below range", func(p *Product) { p.AverageRating = negativeRating }},
		{"rating above range", func(p *Product) { p.AverageRating = MaxRating + 1 }},
		{"negative ratings quantity", func(p *Product) { p.RatingsQuantity = -1 }},
		{"missing description", func(p *Product) { p.Description = "" }},
		{"missing cover image", func(p *Product) { p.ProductImage = "" }},
		{"too many secondary images", func(p *Product) { p.Images = []string{"1", "2", "3", "4"} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid()
			tc.mutate(p)
			if err := p.Validate(); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

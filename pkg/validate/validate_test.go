package validate

import "testing"

type productInput struct {
	Name  string  `json:"name" validate:"required,min=2,max=255"`
	Brand string  `json:"brand" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
	Stock string  `json:"stock" validate:"required,in=In Stock,Out of Stock"`
	Image string  `json:"image" validate:"nullable,url"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(productInput{
		Name:  "Nimbus Desk Lamp",
		Brand: "Nimbus",
		Price: 49.5,
		Stock: "In Stock",
	})
	if HasErrors(errs) {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestRequired(t *testing.T) {
	errs := Struct(productInput{Price: 1, Stock: "In Stock"})
	if errs["name"] == "" {
		t.Error("expected error for empty name")
	}
	if errs["brand"] == "" {
		t.Error("expected error for empty brand")
	}
}

func TestMinLength(t *testing.T) {
	errs := Struct(productInput{Name: "x", Brand: "b", Stock: "In Stock"})
	if errs["name"] != "The name must be at least 2 characters." {
		t.Errorf("unexpected message: %q", errs["name"])
	}
}

func TestInWithSpaces(t *testing.T) {
	errs := Struct(productInput{Name: "ok", Brand: "b", Stock: "Out of Stock"})
	if errs["stock"] != "" {
		t.Errorf("Out of Stock should satisfy in=: %q", errs["stock"])
	}

	errs = Struct(productInput{Name: "ok", Brand: "b", Stock: "backordered"})
	if errs["stock"] != "The selected stock is invalid." {
		t.Errorf("unexpected message: %q", errs["stock"])
	}
}

func TestGTE(t *testing.T) {
	errs := Struct(productInput{Name: "ok", Brand: "b", Price: -1, Stock: "In Stock"})
	if errs["price"] == "" {
		t.Error("expected error for negative price")
	}
}

func TestNullableSkipsWhenEmpty(t *testing.T) {
	errs := Struct(productInput{Name: "ok", Brand: "b", Stock: "In Stock", Image: ""})
	if errs["image"] != "" {
		t.Errorf("nullable empty image should pass: %q", errs["image"])
	}

	errs = Struct(productInput{Name: "ok", Brand: "b", Stock: "In Stock", Image: "not a url"})
	if errs["image"] == "" {
		t.Error("non-empty invalid url should fail")
	}
}

func TestSplitRules(t *testing.T) {
	got := splitRules("required,in=In Stock,Out of Stock,max=100")
	want := []string{"required", "in=In Stock,Out of Stock", "max=100"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rule %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPointerInput(t *testing.T) {
	errs := Struct(&productInput{Name: "ok", Brand: "b", Stock: "In Stock"})
	if HasErrors(errs) {
		t.Fatalf("pointer input should validate the same: %v", errs)
	}
}

package whynoterrors

import "testing"

func TestJSONOkRoundTrip(t *testing.T) {
	res := JSONOk("hi")

	if res.Err != nil {
		t.Fatalf("success case should carry no error, got %v", res.Err)
	}
	if res.Value != "hi" {
		t.Errorf("expected value 'hi', got %q", res.Value)
	}
}

func TestJSONOkStructPayload(t *testing.T) {
	type payload struct {
		ID   int
		Name string
	}
	in := payload{ID: 1, Name: "alice"}

	res := JSONOk(in)
	if res.Value != in {
		t.Errorf("expected payload to round-trip unchanged, got %+v", res.Value)
	}
}

func TestJSONErr(t *testing.T) {
	res := JSONErr[string](NotFound())

	if res.Err == nil {
		t.Fatal("expected error to be set")
	}
	if res.Err.Status != 404 {
		t.Errorf("expected status 404, got %d", res.Err.Status)
	}
	if res.Value != "" {
		t.Errorf("failure case should leave the value zero, got %q", res.Value)
	}
}

func TestHTMLOk(t *testing.T) {
	res := HTMLOk("<h1>hello</h1>")

	if res.Err != nil {
		t.Fatalf("success case should carry no error, got %v", res.Err)
	}
	// No escaping: the body is the caller's responsibility.
	if res.Body != "<h1>hello</h1>" {
		t.Errorf("expected body to pass through verbatim, got %q", res.Body)
	}
}

func TestHTMLOkStringer(t *testing.T) {
	res := HTMLOk(stringish{s: "<p>hi</p>"})

	if res.Body != "<p>hi</p>" {
		t.Errorf("expected body '<p>hi</p>', got %q", res.Body)
	}
}

func TestHTMLErr(t *testing.T) {
	res := HTMLErr(BadRequest("nope"))

	if res.Err == nil {
		t.Fatal("expected error to be set")
	}
	if res.Body != "" {
		t.Errorf("failure case should leave the body empty, got %q", res.Body)
	}
}

package util

import "testing"

type params struct {
	Pin  int    `json:"pin"`
	Mode string `json:"mode"`
}

func TestDecodeJSONShapes(t *testing.T) {
	want := params{Pin: 25, Mode: "output"}

	var fromBytes params
	if err := DecodeJSON([]byte(`{"pin":25,"mode":"output"}`), &fromBytes); err != nil || fromBytes != want {
		t.Fatalf("bytes: %v %v", fromBytes, err)
	}

	var fromString params
	if err := DecodeJSON(`{"pin":25,"mode":"output"}`, &fromString); err != nil || fromString != want {
		t.Fatalf("string: %v %v", fromString, err)
	}

	var fromMap params
	if err := DecodeJSON(map[string]any{"pin": float64(25), "mode": "output"}, &fromMap); err != nil || fromMap != want {
		t.Fatalf("map: %v %v", fromMap, err)
	}

	var bad params
	if err := DecodeJSON("{broken", &bad); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

package protocol_test

import (
	"encoding/json"
	"testing"

	"photon-ca/internal/protocol"
)

func TestSchemas_ValidateSamples(t *testing.T) {
	v, err := protocol.NewValidator()
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}

	valid := map[string][]string{
		protocol.TypeHello: {
			`{"type":"HELLO","protocol_version":"1.0","client_name":"viewer"}`,
			`{"type":"HELLO","protocol_version":"1.0"}`,
		},
		protocol.TypeInject: {
			`{"type":"INJECT","protocol_version":"1.0","index":171}`,
			`{"type":"INJECT","protocol_version":"1.0","centered":[0,-3,3],"variant":"directional"}`,
			`{"type":"INJECT","protocol_version":"1.0","point":[0.4,1.5,-2]}`,
		},
		protocol.TypeStep: {
			`{"type":"STEP","protocol_version":"1.0"}`,
			`{"type":"STEP","protocol_version":"1.0","count":12}`,
		},
		protocol.TypeReset: {
			`{"type":"RESET","protocol_version":"1.0","seed":-9}`,
		},
		protocol.TypeGet: {
			`{"type":"GET","protocol_version":"1.0"}`,
		},
		protocol.TypeState: {
			`{"type":"STATE","protocol_version":"1.0","tick":2,"electric":[],"magnetic":[172],
			  "excitations":[{"index":172,"centered":[0,0,1],"field":"magnetic","direction":[0,0,1]}],
			  "history":{"electric":[0,1,0],"magnetic":[0,0,0]},
			  "first_electric":null,"first_magnetic":[0,0,1]}`,
		},
	}
	for typ, docs := range valid {
		for _, doc := range docs {
			if err := v.Validate(typ, []byte(doc)); err != nil {
				t.Fatalf("%s should validate: %v\n%s", typ, err, doc)
			}
		}
	}

	invalid := map[string][]string{
		protocol.TypeHello: {
			`{"type":"HELLO"}`,
			`{"type":"STEP","protocol_version":"1.0"}`,
		},
		protocol.TypeInject: {
			`{"type":"INJECT","protocol_version":"1.0"}`,
			`{"type":"INJECT","protocol_version":"1.0","index":1,"centered":[0,0,0]}`,
			`{"type":"INJECT","protocol_version":"1.0","index":-1}`,
			`{"type":"INJECT","protocol_version":"1.0","centered":[0,0]}`,
			`{"type":"INJECT","protocol_version":"1.0","index":3,"variant":"sideways"}`,
		},
		protocol.TypeStep: {
			`{"type":"STEP","protocol_version":"1.0","count":0}`,
			`{"type":"STEP","protocol_version":"1.0","count":1.5}`,
		},
		protocol.TypeState: {
			`{"type":"STATE","protocol_version":"1.0","tick":0,"electric":null,"magnetic":[],
			  "excitations":[],"history":{"electric":[],"magnetic":[]},
			  "first_electric":null,"first_magnetic":null}`,
			`{"type":"STATE","protocol_version":"1.0","tick":0,"electric":[],"magnetic":[],
			  "excitations":[],"history":{"electric":[2],"magnetic":[]},
			  "first_electric":null,"first_magnetic":null}`,
		},
	}
	for typ, docs := range invalid {
		for _, doc := range docs {
			if err := v.Validate(typ, []byte(doc)); err == nil {
				t.Fatalf("%s should be rejected:\n%s", typ, doc)
			}
		}
	}

	if err := v.Validate("NOPE", []byte(`{}`)); err == nil {
		t.Fatal("unknown type should fail")
	}
	if err := v.Validate(protocol.TypeGet, []byte(`{`)); err == nil {
		t.Fatal("malformed JSON should fail")
	}
}

func TestMessagesMatchSchemas(t *testing.T) {
	v, err := protocol.NewValidator()
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}
	idx := 4
	msgs := map[string]any{
		protocol.TypeHello:  protocol.HelloMsg{Type: protocol.TypeHello, ProtocolVersion: protocol.Version},
		protocol.TypeInject: protocol.InjectMsg{Type: protocol.TypeInject, ProtocolVersion: protocol.Version, Index: &idx},
		protocol.TypeStep:   protocol.StepMsg{Type: protocol.TypeStep, ProtocolVersion: protocol.Version, Count: 3},
		protocol.TypeReset:  protocol.ResetMsg{Type: protocol.TypeReset, ProtocolVersion: protocol.Version},
		protocol.TypeGet:    protocol.GetMsg{Type: protocol.TypeGet, ProtocolVersion: protocol.Version},
	}
	for typ, m := range msgs {
		b, err := json.Marshal(m)
		if err != nil {
			t.Fatal(err)
		}
		if err := v.Validate(typ, b); err != nil {
			t.Fatalf("%s: %v\n%s", typ, err, b)
		}
	}
}

func TestDecodeBaseAndCodes(t *testing.T) {
	base, err := protocol.DecodeBase([]byte(`{"type":"STEP","protocol_version":"1.0","count":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if base.Type != protocol.TypeStep || base.ProtocolVersion != protocol.Version {
		t.Fatalf("unexpected base %+v", base)
	}
	if !protocol.IsKnownCode(protocol.ErrInvalidIndex) || protocol.IsKnownCode("E_NOPE") {
		t.Fatal("unexpected code registry")
	}
}

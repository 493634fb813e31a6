package service

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/hafaksurgicals/portal/internal/core/ports"
)

type stubBackend struct {
	getFn    func(ctx context.Context, endpoint string, opts *ports.RequestOptions) (*ports.Envelope, error)
	postFn   func(ctx context.Context, endpoint string, body any, opts *ports.RequestOptions) (*ports.Envelope, error)
	putFn    func(ctx context.Context, endpoint string, body any, opts *ports.RequestOptions) (*ports.Envelope, error)
	deleteFn func(ctx context.Context, endpoint string, opts *ports.RequestOptions) (*ports.Envelope, error)
	formFn   func(ctx context.Context, endpoint string, form *ports.Form) (*ports.Envelope, error)
}

func (s *stubBackend) Get(ctx context.Context, endpoint string, opts *ports.RequestOptions) (*ports.Envelope, error) {
	return s.getFn(ctx, endpoint, opts)
}

func (s *stubBackend) Post(ctx context.Context, endpoint string, body any, opts *ports.RequestOptions) (*ports.Envelope, error) {
	return s.postFn(ctx, endpoint, body, opts)
}

func (s *stubBackend) Put(ctx context.Context, endpoint string, body any, opts *ports.RequestOptions) (*ports.Envelope, error) {
	return s.putFn(ctx, endpoint, body, opts)
}

func (s *stubBackend) Delete(ctx context.Context, endpoint string, opts *ports.RequestOptions) (*ports.Envelope, error) {
	return s.deleteFn(ctx, endpoint, opts)
}

func (s *stubBackend) PostForm(ctx context.Context, endpoint string, form *ports.Form) (*ports.Envelope, error) {
	return s.formFn(ctx, endpoint, form)
}

func (s *stubBackend) PutForm(ctx context.Context, endpoint string, form *ports.Form) (*ports.Envelope, error) {
	return s.formFn(ctx, endpoint, form)
}

type staticStore struct {
	token string
}

func (s *staticStore) Token(ctx context.Context) (string, error)    { return s.token, nil }
func (s *staticStore) Save(ctx context.Context, token string) error { return nil }
func (s *staticStore) Clear(ctx context.Context) error              { return nil }

func TestList_OnlySetFieldsInQuery(t *testing.T) {
	var gotQuery url.Values
	backend := &stubBackend{
		getFn: func(ctx context.Context, endpoint string, opts *ports.RequestOptions) (*ports.Envelope, error) {
			if endpoint != "/equipment" {
				t.Errorf("endpoint = %s", endpoint)
			}
			gotQuery = opts.Query
			return &ports.Envelope{Success: true, Data: json.RawMessage(`[]`)}, nil
		},
	}
	svc := NewEquipmentService(backend, &staticStore{})

	_, err := svc.List(context.Background(), ports.ListOptions{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}

	if len(gotQuery) != 2 {
		t.Fatalf("expected exactly page and limit, got %v", gotQuery)
	}
	if gotQuery.Get("page") != "2" || gotQuery.Get("limit") != "10" {
		t.Fatalf("query = %v", gotQuery)
	}
}

func TestList_AttachesBearerToken(t *testing.T) {
	backend := &stubBackend{
		getFn: func(ctx context.Context, endpoint string, opts *ports.RequestOptions) (*ports.Envelope, error) {
			if got := opts.Header.Get("Authorization"); got != "Bearer tok" {
				t.Errorf("Authorization = %q", got)
			}
			return &ports.Envelope{Success: true, Data: json.RawMessage(`[]`)}, nil
		},
	}
	svc := NewEquipmentService(backend, &staticStore{token: "tok"})

	if _, err := svc.List(context.Background(), ports.ListOptions{}); err != nil {
		t.Fatalf("list error: %v", err)
	}
}

func TestListPublic_NoAuthorizationHeader(t *testing.T) {
	backend := &stubBackend{
		getFn: func(ctx context.Context, endpoint string, opts *ports.RequestOptions) (*ports.Envelope, error) {
			if endpoint != "/equipment/public" {
				t.Errorf("endpoint = %s", endpoint)
			}
			if opts.Header.Get("Authorization") != "" {
				t.Error("public listing must not carry a token")
			}
			return &ports.Envelope{Success: true, Data: json.RawMessage(`{"equipment":[{"_id":"e1","name":"Monitor"}]}`)}, nil
		},
	}
	svc := NewEquipmentService(backend, &staticStore{token: "tok"})

	page, err := svc.ListPublic(context.Background(), ports.PublicListOptions{Category: "imaging"})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Name != "Monitor" {
		t.Fatalf("unexpected items: %+v", page.Items)
	}
}

func TestGet_DecodesWrappedAndFlatShapes(t *testing.T) {
	payloads := []string{
		`{"equipment":{"_id":"e1","name":"Ventilator"}}`,
		`{"_id":"e1","name":"Ventilator"}`,
	}
	for _, payload := range payloads {
		backend := &stubBackend{
			getFn: func(ctx context.Context, endpoint string, opts *ports.RequestOptions) (*ports.Envelope, error) {
				return &ports.Envelope{Success: true, Data: json.RawMessage(payload)}, nil
			},
		}
		svc := NewEquipmentService(backend, &staticStore{})

		item, err := svc.Get(context.Background(), "e1")
		if err != nil {
			t.Fatalf("payload %s: %v", payload, err)
		}
		if item.ID != "e1" || item.Name != "Ventilator" {
			t.Fatalf("payload %s: unexpected item %+v", payload, item)
		}
	}
}

func TestSearch_SendsQueryParam(t *testing.T) {
	backend := &stubBackend{
		getFn: func(ctx context.Context, endpoint string, opts *ports.RequestOptions) (*ports.Envelope, error) {
			if endpoint != "/equipment/search" {
				t.Errorf("endpoint = %s", endpoint)
			}
			if got := opts.Query.Get("q"); got != "oxygen concentrator" {
				t.Errorf("q = %q", got)
			}
			return &ports.Envelope{Success: true, Data: json.RawMessage(`[]`)}, nil
		},
	}
	svc := NewEquipmentService(backend, &staticStore{})

	if _, err := svc.Search(context.Background(), "oxygen concentrator"); err != nil {
		t.Fatalf("search error: %v", err)
	}
}

func TestCreate_FailureEnvelopeIsError(t *testing.T) {
	backend := &stubBackend{
		postFn: func(ctx context.Context, endpoint string, body any, opts *ports.RequestOptions) (*ports.Envelope, error) {
			return &ports.Envelope{Success: false, Message: "name already taken"}, nil
		},
	}
	svc := NewEquipmentService(backend, &staticStore{token: "tok"})

	_, err := svc.Create(context.Background(), ports.EquipmentInput{Name: "Drip Stand"})
	if err == nil {
		t.Fatal("expected error on failure envelope")
	}
}

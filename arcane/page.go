package arcane

import (
	"bytes"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Pagination describes the page a list response covers.
type Pagination struct {
	TotalItems      int  `json:"totalItems"`
	TotalPages      int  `json:"totalPages"`
	CurrentPage     int  `json:"currentPage"`
	ItemsPerPage    int  `json:"itemsPerPage"`
	GrandTotalItems *int `json:"grandTotalItems,omitempty"`
}

// Items is the data of a list response. The backend may send null or omit
// the field; both decode to an absent, empty sequence.
type Items[T any] struct {
	list    []T
	raw     json.RawMessage
	present bool
}

// ItemsOf returns a present sequence holding list.
func ItemsOf[T any](list ...T) Items[T] {
	if list == nil {
		list = []T{}
	}
	return Items[T]{list: list, present: true}
}

// All returns the items. It is never nil.
func (it Items[T]) All() []T {
	if it.list == nil {
		return []T{}
	}
	return it.list
}

// Present reports whether the response carried a non-null data array.
func (it Items[T]) Present() bool {
	return it.present
}

// Raw returns the data array exactly as the backend sent it, or [] when it
// was absent.
func (it Items[T]) Raw() json.RawMessage {
	if it.raw != nil {
		return it.raw
	}
	out, err := json.Marshal(it.All())
	if err != nil {
		return json.RawMessage("[]")
	}
	return out
}

// Len returns the number of items.
func (it Items[T]) Len() int {
	return len(it.list)
}

// UnmarshalJSON implements json.Unmarshaler.
func (it *Items[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*it = Items[T]{}
		return nil
	}

	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*it = ItemsOf(list...)
	it.raw = append(json.RawMessage(nil), bytes.TrimSpace(data)...)
	return nil
}

// MarshalJSON implements json.Marshaler. Absent items encode as [].
func (it Items[T]) MarshalJSON() ([]byte, error) {
	return it.Raw(), nil
}

// Page is a paginated list response.
type Page[T any] struct {
	Success    bool       `json:"success"`
	Data       Items[T]   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Single is a single-item response. Data holds the decoded fields of T;
// Raw keeps the whole object.
type Single[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`

	raw json.RawMessage
}

// Raw returns the data object exactly as the backend sent it, or null when
// it was absent.
func (s *Single[T]) Raw() json.RawMessage {
	if len(s.raw) == 0 {
		return json.RawMessage("null")
	}
	return s.raw
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Single[T]) UnmarshalJSON(data []byte) error {
	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	*s = Single[T]{Success: env.Success}
	raw := bytes.TrimSpace(env.Data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	s.raw = append(json.RawMessage(nil), raw...)
	return json.Unmarshal(s.raw, &s.Data)
}

// ActionResponse is returned by state-changing operations.
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ListOptions filters a list call. Search is applied by the backend.
// Zero values are omitted.
type ListOptions struct {
	Search string
	Limit  int
}

// Query renders the options as a query string with a leading '?', or ""
// when there is nothing to send. Parameter order is search, limit.
func (o ListOptions) Query() string {
	return o.query(true)
}

// searchQuery renders only the search parameter.
func (o ListOptions) searchQuery() string {
	return o.query(false)
}

func (o ListOptions) query(withLimit bool) string {
	var params []string
	if o.Search != "" {
		params = append(params, "search="+url.QueryEscape(o.Search))
	}
	if withLimit && o.Limit > 0 {
		params = append(params, "limit="+strconv.Itoa(o.Limit))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + strings.Join(params, "&")
}

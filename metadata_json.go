package gopaging

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RawMetadata is the wire form of Metadata. Every derived field is encoded
// for UI consumers, but only CurrentPage, ItemsPerPage, MaxWindowSize and
// TotalItemCount are read back by Decode; the rest is recomputed.
type RawMetadata struct {
	CurrentPage      int   `json:"currentPage"`
	TotalPages       int   `json:"totalPages"`
	TotalItemCount   int   `json:"totalItemCount" validate:"gte=0"`
	Skip             int   `json:"skip"`
	ItemsPerPage     int   `json:"itemsPerPage" validate:"gte=1"`
	MaxWindowSize    int   `json:"maxWindowSize" validate:"gte=1"`
	Pages            []int `json:"pages"`
	HasPrevious      bool  `json:"hasPrevious"`
	PreviousPage     int   `json:"previousPage"`
	HasNext          bool  `json:"hasNext"`
	NextPage         int   `json:"nextPage"`
	HasMultiplePages bool  `json:"hasMultiplePages"`
	FromItem         int   `json:"fromItem"`
	ToItem           int   `json:"toItem"`
}

var _validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names so that errors point at the payload field.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Raw returns the wire form of the metadata.
func (m Metadata) Raw() RawMetadata {
	pages := m.GetPages()
	if pages == nil {
		pages = []int{}
	}

	return RawMetadata{
		CurrentPage:      m.currentPage,
		TotalPages:       m.totalPages,
		TotalItemCount:   m.totalItemCount,
		Skip:             m.skip,
		ItemsPerPage:     m.take,
		MaxWindowSize:    m.maxWindowSize,
		Pages:            pages,
		HasPrevious:      m.hasPrevious,
		PreviousPage:     m.previousPage,
		HasNext:          m.hasNext,
		NextPage:         m.nextPage,
		HasMultiplePages: m.HasMultiplePages(),
		FromItem:         m.fromItem,
		ToItem:           m.toItem,
	}
}

// Decode validates the paging inputs of the payload and recomputes the
// metadata from them. A rejected field is reported as *ConfigurationError.
func (r RawMetadata) Decode() (Metadata, error) {
	err := _validate.Struct(r)
	if err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			value, _ := fieldErrs[0].Value().(int)
			return Metadata{}, newConfigurationError(fieldErrs[0].Field(), value)
		}

		return Metadata{}, fmt.Errorf("cannot validate metadata: %w", err)
	}

	return NewMetadata(r.CurrentPage, r.ItemsPerPage, r.MaxWindowSize, r.TotalItemCount)
}

// MarshalJSON - implements json.Marshaler.
func (m Metadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Raw())
}

// UnmarshalJSON - implements json.Unmarshaler.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var raw RawMetadata
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	decoded, err := raw.Decode()
	if err != nil {
		return err
	}

	*m = decoded

	return nil
}

var (
	_ json.Marshaler   = Metadata{}
	_ json.Unmarshaler = (*Metadata)(nil)
)

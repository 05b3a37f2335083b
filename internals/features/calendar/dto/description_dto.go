// file: internals/features/calendar/dto/description_dto.go
package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	model "schoolcal_backend/internals/features/calendar/model"
)

/* =========================================================
   Requests: UPSERT
   ========================================================= */

// Description tidak punya ambiguitas partial-field: satu-satunya alasan
// client memanggil adalah mengganti teks, jadi update eksplisit selalu
// menimpa nilai tersimpan — termasuk dengan teks kosong/null.
type UpsertDescriptionRequest struct {
	DateKey     string  `json:"dateKey" validate:"required"`
	Description *string `json:"description"`
}

func (r *UpsertDescriptionRequest) Normalize() {
	r.DateKey = strings.TrimSpace(r.DateKey)
}

func (r *UpsertDescriptionRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	if _, ok := ParseDateKey(r.DateKey); !ok {
		return errors.New("dateKey must be YYYY-MM-DD")
	}
	return nil
}

/* =========================================================
   Aggregation
   ========================================================= */

// GroupDescriptions: flat rows → sparse map "YYYY-MM-DD" → text.
func GroupDescriptions(rows []model.DescriptionModel) map[string]*string {
	out := make(map[string]*string, len(rows))
	for _, m := range rows {
		out[DateKey(m.DescriptionDate)] = m.DescriptionText
	}
	return out
}

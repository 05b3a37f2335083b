// file: internals/features/calendar/dto/material_dto.go
package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	model "schoolcal_backend/internals/features/calendar/model"
)

/* =========================================================
   Requests: CREATE
   ========================================================= */

type CreateMaterialRequest struct {
	DateKey string  `json:"dateKey" validate:"required"`
	Grade   string  `json:"grade" validate:"required,max=32"`
	Title   string  `json:"title" validate:"required,max=160"`
	Link    string  `json:"link" validate:"required"`
	Type    *string `json:"type" validate:"omitempty,max=32"`
}

func (r *CreateMaterialRequest) Normalize() {
	r.DateKey = strings.TrimSpace(r.DateKey)
	r.Grade = strings.TrimSpace(r.Grade)
	r.Title = strings.TrimSpace(r.Title)
	r.Link = strings.TrimSpace(r.Link)
	r.Type = trimPtr(r.Type)
}

func (r *CreateMaterialRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	if _, ok := ParseDateKey(r.DateKey); !ok {
		return errors.New("dateKey must be YYYY-MM-DD")
	}
	return nil
}

func (r *CreateMaterialRequest) ToModel() model.MaterialModel {
	date, _ := ParseDateKey(r.DateKey)
	mtype := model.MaterialTypeDefault
	if r.Type != nil {
		mtype = *r.Type
	}
	return model.MaterialModel{
		MaterialDate:  date,
		MaterialGrade: r.Grade,
		MaterialTitle: r.Title,
		MaterialLink:  r.Link,
		MaterialType:  mtype,
	}
}

/* =========================================================
   Responses & aggregation
   ========================================================= */

type MaterialResponse struct {
	ID    int64  `json:"id"`
	Grade string `json:"grade"`
	Title string `json:"title"`
	Link  string `json:"link"`
	Type  string `json:"type"`
}

func FromModelMaterial(m model.MaterialModel) MaterialResponse {
	return MaterialResponse{
		ID:    m.MaterialID,
		Grade: m.MaterialGrade,
		Title: m.MaterialTitle,
		Link:  m.MaterialLink,
		Type:  m.MaterialType,
	}
}

// GroupMaterials: flat rows → map tanggal → map grade → materials.
// Urutan per grade mengikuti urutan pembuatan (id ascending dari store);
// grouping tidak mengubah urutan relatif dalam satu grade.
func GroupMaterials(rows []model.MaterialModel) map[string]map[string][]MaterialResponse {
	out := make(map[string]map[string][]MaterialResponse)
	for _, m := range rows {
		k := DateKey(m.MaterialDate)
		if out[k] == nil {
			out[k] = make(map[string][]MaterialResponse)
		}
		out[k][m.MaterialGrade] = append(out[k][m.MaterialGrade], FromModelMaterial(m))
	}
	return out
}

// GroupMaterialsByGrade: rows satu tanggal → map grade → materials.
func GroupMaterialsByGrade(rows []model.MaterialModel) map[string][]MaterialResponse {
	out := make(map[string][]MaterialResponse)
	for _, m := range rows {
		out[m.MaterialGrade] = append(out[m.MaterialGrade], FromModelMaterial(m))
	}
	return out
}

package v1

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shenikar/incident_board/internal/models"
)

// Coordinate - сырое значение широты или долготы из формы.
// В JSON принимает число или строку; любое другое значение дает пустую строку,
// то есть инцидент без координат.
type Coordinate string

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch t := v.(type) {
	case json.Number:
		*c = Coordinate(t.String())
	case string:
		*c = Coordinate(t)
	default:
		*c = ""
	}
	return nil
}

// SubmitIncidentRequest DTO формы отправки инцидента. Все поля приходят строками,
// координаты в JSON могут быть и числами.
// @Description DTO формы отправки инцидента
type SubmitIncidentRequest struct {
	Title       string     `json:"title" form:"title" validate:"max=255"`
	Location    string     `json:"location" form:"location" validate:"max=255"`
	Lat         Coordinate `json:"lat" form:"lat" validate:"max=32" swaggertype:"string"`
	Lng         Coordinate `json:"lng" form:"lng" validate:"max=32" swaggertype:"string"`
	Severity    string     `json:"severity" form:"severity" validate:"omitempty,oneof=mild average critical alltime"`
	Description string     `json:"description" form:"description" validate:"max=4000"`
	Image       string     `json:"image" form:"image" validate:"max=2048"`
	Time        string     `json:"time" form:"time" validate:"max=64"`
}

// SetFilterRequest DTO для смены активного фильтра ленты и карты
// @Description DTO для смены активного фильтра
type SetFilterRequest struct {
	Severity string `json:"severity" validate:"required,oneof=all mild average critical alltime"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Lat         *float64        `json:"lat"`
	Lng         *float64        `json:"lng"`
	Severity    models.Severity `json:"severity"`
	Image       string          `json:"image,omitempty"`
	Time        string          `json:"time"`
	Verified    uint            `json:"verified"`
	Flagged     uint            `json:"flagged"`
	Submitted   bool            `json:"submitted"`
}

// SubmitIncidentResponse DTO ответа на отправку формы
// @Description DTO ответа на отправку формы
type SubmitIncidentResponse struct {
	Incident    *IncidentResponse `json:"incident"`
	NextSection string            `json:"next_section"`
}

// FilterResponse DTO с активным фильтром
// @Description DTO с активным фильтром
type FilterResponse struct {
	Filter models.SeverityFilter `json:"filter"`
}

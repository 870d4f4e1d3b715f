package models

import (
	"github.com/google/uuid"
)

// Incident - запись об инциденте на доске.
// Lat/Lng равны nil, если координаты неизвестны (ноль - валидная координата).
// Пустой Image означает, что картинка не задана и заглушка подставляется при отрисовке.
type Incident struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Lat         *float64  `json:"lat,omitempty"`
	Lng         *float64  `json:"lng,omitempty"`
	Severity    Severity  `json:"severity"`
	Image       string    `json:"image,omitempty"`
	Time        string    `json:"time"`
	Verified    uint      `json:"verified"`
	Flagged     uint      `json:"flagged"`
	Submitted   bool      `json:"submitted"`
}

// Located сообщает, заданы ли обе координаты
func (i *Incident) Located() bool {
	return i.Lat != nil && i.Lng != nil
}

// Clone возвращает копию записи, не разделяющую указатели на координаты
func (i *Incident) Clone() *Incident {
	c := *i
	if i.Lat != nil {
		lat := *i.Lat
		c.Lat = &lat
	}
	if i.Lng != nil {
		lng := *i.Lng
		c.Lng = &lng
	}
	return &c
}

// SubmissionForm - сырые значения полей формы отправки инцидента
type SubmissionForm struct {
	Title       string
	Location    string
	Lat         string
	Lng         string
	Severity    string
	Description string
	Image       string
	Time        string
}

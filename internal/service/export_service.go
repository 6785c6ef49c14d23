package service

import (
	"errors"
	"io"

	"ai-research-be/pkg/pdf"
)

// ErrNoHistory is returned when the requested display name has no
// persisted sessions at all.
var ErrNoHistory = errors.New("no history found for this user")

// IExportService renders a user's full history as a PDF document.
type IExportService interface {
	ExportPDF(name string, w io.Writer) error
}

type exportService struct {
	history  IHistoryService
	exporter *pdf.Exporter
}

func NewExportService(history IHistoryService, exporter *pdf.Exporter) IExportService {
	return &exportService{
		history:  history,
		exporter: exporter,
	}
}

func (s *exportService) ExportPDF(name string, w io.Writer) error {
	sessions, err := s.history.GetByName(name)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		return ErrNoHistory
	}
	return s.exporter.Export(name, sessions, w)
}

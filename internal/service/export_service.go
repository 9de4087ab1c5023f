package service

import (
	"alcyxob/runtrack/internal/domain"
	"alcyxob/runtrack/internal/log"
	"alcyxob/runtrack/internal/repository"
	"alcyxob/runtrack/internal/storage"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrExportFailed = errors.New("failed to export weekly history")

// ExportContentType is the content type of stored exports.
const ExportContentType = "text/csv"

// ExportHeader is the first row of every export.
var ExportHeader = []string{"week", "monday", "sunday", "goal", "distance", "runs", "longest", "average", "diff"}

// ExportResult is a stored export together with a temporary download link.
type ExportResult struct {
	Export      *domain.Export
	DownloadURL string
	ExpiresAt   time.Time
}

type ExportService interface {
	ExportWeekly(ctx context.Context, userID primitive.ObjectID) (*ExportResult, error)
	ListExports(ctx context.Context, userID primitive.ObjectID) ([]domain.Export, error)
	// DownloadURL presigns a fresh link for one of the user's exports.
	DownloadURL(ctx context.Context, export domain.Export) (string, error)
}

// exportService implements the ExportService interface.
type exportService struct {
	dashboardService DashboardService
	exportRepo       repository.ExportRepository
	fileStorage      storage.FileStorage
	urlExpiry        time.Duration
	newID            func() string
}

// NewExportService creates a new instance of exportService.
func NewExportService(dashboardService DashboardService, exportRepo repository.ExportRepository, fileStorage storage.FileStorage) ExportService {
	return &exportService{
		dashboardService: dashboardService,
		exportRepo:       exportRepo,
		fileStorage:      fileStorage,
		urlExpiry:        storage.DefaultPresignedURLExpiry,
		newID:            func() string { return uuid.New().String() },
	}
}

// ExportObjectKey returns the storage key of an export file.
func ExportObjectKey(userID primitive.ObjectID, id string) string {
	return fmt.Sprintf("exports/%s/%s.csv", userID.Hex(), id)
}

// ExportWeekly renders the user's weekly history as CSV, oldest week first,
// and stores it.
func (s *exportService) ExportWeekly(ctx context.Context, userID primitive.ObjectID) (*ExportResult, error) {
	history, err := s.dashboardService.History(ctx, userID)
	if err != nil {
		return nil, err
	}

	body, err := renderWeeksCSV(history)
	if err != nil {
		log.Errorw("Failed to render export", "userId", userID.Hex(), "error", err)
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	id := s.newID()
	key := ExportObjectKey(userID, id)
	if err := s.fileStorage.PutObject(ctx, key, ExportContentType, body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	export := &domain.Export{
		UserID:    userID,
		ObjectKey: key,
		FileName:  "runtrack-weekly-" + time.Now().UTC().Format("20060102") + ".csv",
		Weeks:     len(history),
		Size:      int64(len(body)),
	}
	exportID, err := s.exportRepo.Create(ctx, export)
	if err != nil {
		// the file is useless without its record
		if delErr := s.fileStorage.DeleteObject(ctx, key); delErr != nil {
			log.Warnw("Failed to remove orphaned export", "key", key, "error", delErr)
		}
		return nil, err
	}
	export.ID = exportID

	url, err := s.DownloadURL(ctx, *export)
	if err != nil {
		return nil, err
	}

	log.Infow("Exported weekly history", "userId", userID.Hex(), "weeks", export.Weeks, "bytes", export.Size)
	return &ExportResult{
		Export:      export,
		DownloadURL: url,
		ExpiresAt:   time.Now().UTC().Add(s.urlExpiry),
	}, nil
}

// ListExports returns the user's exports, newest first.
func (s *exportService) ListExports(ctx context.Context, userID primitive.ObjectID) ([]domain.Export, error) {
	exports, err := s.exportRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exports == nil {
		exports = []domain.Export{}
	}
	return exports, nil
}

// DownloadURL presigns a fresh download link for export.
func (s *exportService) DownloadURL(ctx context.Context, export domain.Export) (string, error) {
	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, export.ObjectKey, s.urlExpiry)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return url, nil
}

// renderWeeksCSV writes newest-first summaries as chronological CSV rows.
func renderWeeksCSV(history []WeekSummary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(ExportHeader); err != nil {
		return nil, err
	}
	for i := len(history) - 1; i >= 0; i-- {
		week := history[i]
		row := []string{
			week.Name,
			week.Monday.Format(DateLayout),
			week.Sunday.Format(DateLayout),
			formatDistance(week.Totals.Goal),
			formatDistance(week.Totals.Distance),
			strconv.Itoa(week.Totals.Runs),
			formatDistance(week.Longest),
			formatDistance(week.Average),
			formatDistance(week.Totals.Diff),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatDistance rounds to hundredths to hide float summation noise.
func formatDistance(d float64) string {
	return strconv.FormatFloat(math.Round(d*100)/100, 'f', -1, 64)
}

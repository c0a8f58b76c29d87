package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"parma-backoffice/internal/models"
	"parma-backoffice/internal/storage"
	"parma-backoffice/internal/transport/dto"
)

type auditService struct {
	auditRepo storage.AuditLogRepository
}

// NewAuditService creates a new instance of AuditService.
func NewAuditService(auditRepo storage.AuditLogRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// List returns the action log newest first, optionally narrowed by tab
// and action. Rows whose timestamp does not parse keep their stored
// order at the end.
func (s *auditService) List(ctx context.Context, req *dto.ListAuditRequest) ([]models.AuditEntry, error) {
	entries, err := s.auditRepo.List(ctx)
	if err != nil {
		log.Printf("AuditService: Error listing audit entries: %v", err)
		return nil, fmt.Errorf("internal error listing audit entries: %w", err)
	}

	filtered := make([]models.AuditEntry, 0, len(entries))
	for _, e := range entries {
		if req != nil {
			if req.Tab != "" && e.Tab != req.Tab {
				continue
			}
			if req.Action != "" && e.Action != req.Action {
				continue
			}
		}
		filtered = append(filtered, e)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		ti, erri := time.Parse(models.TimestampLayout, filtered[i].Timestamp)
		tj, errj := time.Parse(models.TimestampLayout, filtered[j].Timestamp)
		if erri != nil || errj != nil {
			return false
		}
		return ti.After(tj)
	})
	return filtered, nil
}

func (s *auditService) ExportCSV(ctx context.Context) ([]byte, error) {
	return s.auditRepo.ExportCSV(ctx)
}

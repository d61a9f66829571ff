package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"

	"fieldmate/internal/apperr"
	"fieldmate/internal/database"
	"fieldmate/internal/model"
	"fieldmate/internal/repository"
	"fieldmate/internal/state"
)

// ImportSummary reports how many records each collection restored.
type ImportSummary struct {
	Restored map[string]int `json:"restored"`
}

type BackupService interface {
	// Export emits the full database as one transit document; bill images
	// travel base64-encoded in sidecar fields.
	Export(ctx context.Context) (*model.BackupDocument, error)
	// Import destructively replaces all five collections. The document is
	// parsed and every attachment decoded before anything is cleared, and
	// the clear-then-restore runs in one transaction, so a failure never
	// leaves a partially replaced database.
	Import(ctx context.Context, raw []byte) (*ImportSummary, error)
}

type backupService struct {
	saleRepo       repository.SaleRepository
	attendanceRepo repository.AttendanceRepository
	targetRepo     repository.TargetRepository
	crmRepo        repository.CRMRepository
	settingsRepo   repository.SettingsRepository
	txManager      database.TxManager
	cache          *state.Cache
	notifier       Notifier
	logger         *slog.Logger
}

func NewBackupService(
	saleRepo repository.SaleRepository,
	attendanceRepo repository.AttendanceRepository,
	targetRepo repository.TargetRepository,
	crmRepo repository.CRMRepository,
	settingsRepo repository.SettingsRepository,
	txManager database.TxManager,
	cache *state.Cache,
	notifier Notifier,
	logger *slog.Logger,
) BackupService {
	if logger == nil {
		logger = slog.Default()
	}
	return &backupService{
		saleRepo:       saleRepo,
		attendanceRepo: attendanceRepo,
		targetRepo:     targetRepo,
		crmRepo:        crmRepo,
		settingsRepo:   settingsRepo,
		txManager:      txManager,
		cache:          cache,
		notifier:       notifier,
		logger:         logger,
	}
}

func (s *backupService) Export(ctx context.Context) (*model.BackupDocument, error) {
	sales, err := s.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	attendance, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	targets, err := s.targetRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	crm, err := s.crmRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	doc := &model.BackupDocument{
		Sales:      make([]model.BackupSale, 0, len(sales)),
		Attendance: attendance,
		Targets:    targets,
		CRM:        crm,
		Settings:   []model.Settings{*settings},
	}
	for _, sale := range sales {
		doc.Sales = append(doc.Sales, encodeTransitSale(sale))
	}

	s.logger.Info("exported backup",
		"sales", len(doc.Sales),
		"attendance", len(doc.Attendance),
		"targets", len(doc.Targets),
		"crm", len(doc.CRM),
	)
	return doc, nil
}

func (s *backupService) Import(ctx context.Context, raw []byte) (*ImportSummary, error) {
	var doc model.BackupDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, apperr.Wrap(apperr.CodeImport, "malformed backup document", err)
	}

	// Stage everything before touching the database: a decode failure must
	// abort with zero state change.
	sales := make([]model.Sale, 0, len(doc.Sales))
	for _, transit := range doc.Sales {
		sale, err := decodeTransitSale(transit)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}

	summary := &ImportSummary{Restored: make(map[string]int)}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.clearAll(txCtx); err != nil {
			return err
		}

		for i := range sales {
			if err := s.saleRepo.Put(txCtx, &sales[i]); err != nil {
				return err
			}
		}
		summary.Restored[CollectionSales] = len(sales)
		s.logger.Info("restored collection", "collection", CollectionSales, "records", len(sales))

		for i := range doc.Attendance {
			if err := s.attendanceRepo.Put(txCtx, &doc.Attendance[i]); err != nil {
				return err
			}
		}
		summary.Restored[CollectionAttendance] = len(doc.Attendance)
		s.logger.Info("restored collection", "collection", CollectionAttendance, "records", len(doc.Attendance))

		for i := range doc.Targets {
			if err := s.targetRepo.Put(txCtx, &doc.Targets[i]); err != nil {
				return err
			}
		}
		summary.Restored[CollectionTargets] = len(doc.Targets)
		s.logger.Info("restored collection", "collection", CollectionTargets, "records", len(doc.Targets))

		for i := range doc.CRM {
			if err := s.crmRepo.Put(txCtx, &doc.CRM[i]); err != nil {
				return err
			}
		}
		summary.Restored[CollectionCRM] = len(doc.CRM)
		s.logger.Info("restored collection", "collection", CollectionCRM, "records", len(doc.CRM))

		for i := range doc.Settings {
			if err := s.settingsRepo.Put(txCtx, &doc.Settings[i]); err != nil {
				return err
			}
		}
		summary.Restored[CollectionSettings] = len(doc.Settings)
		s.logger.Info("restored collection", "collection", CollectionSettings, "records", len(doc.Settings))

		return nil
	})
	if err != nil {
		s.logger.Error("import rolled back", "error", err)
		return nil, err
	}

	if err := s.cache.LoadAll(ctx); err != nil {
		return nil, err
	}
	if s.notifier != nil {
		for _, collection := range []string{
			CollectionSales, CollectionAttendance, CollectionTargets,
			CollectionCRM, CollectionSettings,
		} {
			s.notifier.NotifyChange(collection, "imported")
		}
	}
	return summary, nil
}

func (s *backupService) clearAll(ctx context.Context) error {
	if err := s.saleRepo.Clear(ctx); err != nil {
		return err
	}
	if err := s.attendanceRepo.Clear(ctx); err != nil {
		return err
	}
	if err := s.targetRepo.Clear(ctx); err != nil {
		return err
	}
	if err := s.crmRepo.Clear(ctx); err != nil {
		return err
	}
	return s.settingsRepo.Clear(ctx)
}

// encodeTransitSale moves the live blob into the base64 sidecar fields.
func encodeTransitSale(sale model.Sale) model.BackupSale {
	transit := model.BackupSale{Sale: sale}
	if sale.HasBillImage() {
		transit.BillImageBase64 = base64.StdEncoding.EncodeToString(sale.BillImage)
		transit.BillImageType = sale.BillImageMIME
		transit.Sale.BillImage = nil
		transit.Sale.BillImageMIME = ""
	}
	return transit
}

// decodeTransitSale strips the sidecar fields back into the live shape.
func decodeTransitSale(transit model.BackupSale) (model.Sale, error) {
	sale := transit.Sale
	if transit.BillImageBase64 != "" {
		image, err := base64.StdEncoding.DecodeString(transit.BillImageBase64)
		if err != nil {
			return model.Sale{}, apperr.Wrap(apperr.CodeImport, "undecodable bill image in backup", err)
		}
		sale.BillImage = image
		sale.BillImageMIME = transit.BillImageType
		if sale.BillImageMIME == "" {
			sale.BillImageMIME = "image/jpeg"
		}
	}
	return sale, nil
}

package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"fieldmate/internal/analytics"
	"fieldmate/internal/apperr"
	"fieldmate/internal/model"
	"fieldmate/internal/state"
)

// productFamilies classifies sales into the brand's reporting families for
// the shareable daily summary. Adding a family is a data change.
var productFamilies = []analytics.ProductFamily{
	{Name: "Bajaj Mixer", Keywords: []string{"bajaj mixer", "bajaj mg"}},
	{Name: "Morphy Mixer", Keywords: []string{"mr tresta", "mr tetragrind", "mr grindpro"}},
	{Name: "Storage Geyser", Keywords: []string{"storage geyser", "water heater"}},
	{Name: "Instant Geyser", Keywords: []string{"instant geyser"}},
	{Name: "Air Fryer", Keywords: []string{"air fryer"}},
	{Name: "OTG 60L", Keywords: []string{"otg 60"}},
	{Name: "OTG 29L", Keywords: []string{"otg 29"}},
	{Name: "20MWS", Keywords: []string{"20mws", "20ms"}},
	{Name: "Steam Iron", Keywords: []string{"steam iron"}},
	{Name: "Dry Iron", Keywords: []string{"dry iron"}},
	{Name: "Induction", Keywords: []string{"induction"}},
	{Name: "Sandwich Maker", Keywords: []string{"sandwich maker"}},
	{Name: "Collar", Keywords: []string{"collar"}},
}

// DocumentRenderer is the external report-rendering collaborator. The core
// supplies the filtered sales; rendering happens downstream.
type DocumentRenderer interface {
	Render(ctx context.Context, from, to string, sales []model.Sale) ([]byte, error)
}

// --- DTOs ---

type DailySummary struct {
	Date         string                  `json:"date"`
	Value        string                  `json:"value"`
	Quantity     int                     `json:"quantity"`
	MonthToDate  string                  `json:"monthToDate"`
	FamilyCounts []analytics.FamilyCount `json:"familyCounts"`
	WeekStart    string                  `json:"weekStart"`
	WeekEnd      string                  `json:"weekEnd"`
}

// --- Interface ---

type ReportService interface {
	Daily(ctx context.Context, date string) (DailySummary, error)
	// DailyShareMessage builds the end-of-day text the employee forwards to
	// the manager, plus the messaging-app link wrapping it.
	DailyShareMessage(ctx context.Context, date string) (message, shareLink string, err error)
	AttendanceShareMessage(ctx context.Context) (message, shareLink string)
	TargetShareMessage(ctx context.Context, date string) (message, shareLink string, err error)
	// RangeSales feeds the document renderer; filtering is in scope,
	// rendering is not.
	RangeSales(ctx context.Context, from, to string) ([]model.Sale, error)
	RenderReport(ctx context.Context, from, to string) ([]byte, error)
}

type reportService struct {
	cache    *state.Cache
	renderer DocumentRenderer
	now      func() time.Time
}

func NewReportService(cache *state.Cache, renderer DocumentRenderer) ReportService {
	return &reportService{cache: cache, renderer: renderer, now: time.Now}
}

// --- Implementation ---

func (s *reportService) Daily(ctx context.Context, date string) (DailySummary, error) {
	if err := validateDate(date); err != nil {
		return DailySummary{}, err
	}
	ref, _ := time.ParseInLocation(dateLayout, date, time.UTC)

	sales := s.cache.Sales()
	daySales := analytics.SalesOn(sales, date)
	weekStart, weekEnd := analytics.WeekWindow(ref)

	return DailySummary{
		Date:         date,
		Value:        analytics.DayValue(sales, date).String(),
		Quantity:     analytics.DayQuantity(sales, date),
		MonthToDate:  analytics.MonthToDateValue(sales, ref).String(),
		FamilyCounts: analytics.FamilyQuantities(daySales, productFamilies),
		WeekStart:    weekStart.Format(dateLayout),
		WeekEnd:      weekEnd.Format(dateLayout),
	}, nil
}

func (s *reportService) DailyShareMessage(ctx context.Context, date string) (string, string, error) {
	summary, err := s.Daily(ctx, date)
	if err != nil {
		return "", "", err
	}
	settings := s.cache.Settings()
	displayDate, _ := time.ParseInLocation(dateLayout, date, time.UTC)

	var b strings.Builder
	fmt.Fprintf(&b, "Name:%s\n", settings.UserName)
	fmt.Fprintf(&b, "Date: %s\n", displayDate.Format("02/01/2006"))
	fmt.Fprintf(&b, "Store Location :%s\n", settings.StoreLocation)
	fmt.Fprintf(&b, "Today's Sale Value:= %s\n", summary.Value)
	fmt.Fprintf(&b, "Today's Sale qty=%d\n", summary.Quantity)
	for _, fc := range summary.FamilyCounts {
		fmt.Fprintf(&b, "%s Qty: =%02d\n", fc.Name, fc.Quantity)
	}
	fmt.Fprintf(&b, "MTD Sale Value = %s\n", summary.MonthToDate)
	b.WriteString("\nI checked out sir ,,,,,")

	message := b.String()
	return message, shareLink(message), nil
}

func (s *reportService) AttendanceShareMessage(ctx context.Context) (string, string) {
	settings := s.cache.Settings()
	message := fmt.Sprintf("Name :%s\nStore: %s\nLocation: %s\nDate : %s    \nI am in the store sir...   -",
		settings.UserName,
		settings.StoreName,
		settings.StoreLocation,
		s.now().Format("02/01/2006"),
	)
	return message, shareLink(message)
}

func (s *reportService) TargetShareMessage(ctx context.Context, date string) (string, string, error) {
	if err := validateDate(date); err != nil {
		return "", "", err
	}

	var target model.Target
	for _, t := range s.cache.Targets() {
		if t.Date == date {
			target = t
			break
		}
	}
	settings := s.cache.Settings()
	displayDate, _ := time.ParseInLocation(dateLayout, date, time.UTC)

	message := fmt.Sprintf(
		"Date: %s\nName:%s\nDay Target: %s\nDay Achievement: %s\nWeek Target: %s\nWeek Achievement: %s\nEOL Target: %s\nEOL Achievement: %s",
		displayDate.Format("02-01-2006"),
		settings.UserName,
		target.DayTarget, target.DayAchievement,
		target.WeekTarget, target.WeekAchievement,
		target.EOLTarget, target.EOLAchieve,
	)
	return message, shareLink(message), nil
}

func (s *reportService) RangeSales(ctx context.Context, from, to string) ([]model.Sale, error) {
	if err := validateDate(from); err != nil {
		return nil, err
	}
	if err := validateDate(to); err != nil {
		return nil, err
	}
	if from > to {
		return nil, apperr.Validation("from must not be after to")
	}
	return analytics.FilterByRange(s.cache.Sales(), from, to), nil
}

func (s *reportService) RenderReport(ctx context.Context, from, to string) ([]byte, error) {
	sales, err := s.RangeSales(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if s.renderer == nil {
		return nil, apperr.New(apperr.CodeAssistant, "report rendering is not available")
	}
	document, err := s.renderer.Render(ctx, from, to, sales)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeAssistant, "report rendering failed", err)
	}
	return document, nil
}

func shareLink(message string) string {
	return "https://wa.me/?text=" + url.QueryEscape(message)
}

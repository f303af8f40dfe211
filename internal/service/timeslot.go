package service

import (
	"fmt"
	"strconv"
	"strings"

	"gamecenter-backend/internal/database/models"
	apperrors "gamecenter-backend/internal/errors"
)

// timeRange is a half-open [Start,End) interval in minutes since midnight
type timeRange struct {
	Start int
	End   int
}

func (r timeRange) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", r.Start/60, r.Start%60, r.End/60, r.End%60)
}

// overlaps reports whether two half-open intervals intersect
func (r timeRange) overlaps(other timeRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// contains reports whether other lies fully within r
func (r timeRange) contains(other timeRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// parseClock parses "HH:MM" into minutes since midnight. Seconds suffixes
// ("HH:MM:SS") from the time column are tolerated and ignored.
func parseClock(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 {
		return 0, apperrors.ErrInvalidTimeFormat
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, apperrors.ErrInvalidTimeFormat
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, apperrors.ErrInvalidTimeFormat
	}
	return hours*60 + minutes, nil
}

// parseTimeRange parses "HH:MM-HH:MM" into a timeRange
func parseTimeRange(start, end string) (timeRange, error) {
	startMin, err := parseClock(start)
	if err != nil {
		return timeRange{}, err
	}
	endMin, err := parseClock(end)
	if err != nil {
		return timeRange{}, err
	}
	if endMin <= startMin {
		return timeRange{}, apperrors.ErrInvalidTimeRange
	}
	return timeRange{Start: startMin, End: endMin}, nil
}

// parseSlotToken parses a "HH:MM-HH:MM" slot token, fixed labels included
func parseSlotToken(token string) (timeRange, error) {
	parts := strings.SplitN(strings.TrimSpace(token), "-", 2)
	if len(parts) != 2 {
		return timeRange{}, apperrors.ErrInvalidTimeFormat
	}
	return parseTimeRange(parts[0], parts[1])
}

// isUnavailableToken reports whether a slot token declares the GM
// unavailable. Any token carrying the "indisponible" tag counts.
func isUnavailableToken(token string) bool {
	return strings.Contains(strings.ToLower(token), models.SlotUnavailableTag)
}

// AvailabilityStatus classifies how a declared availability relates to a
// candidate event window. Only informational; it never sets HasConflict.
type AvailabilityStatus string

const (
	AvailabilityStatusFull        AvailabilityStatus = "full"        // available all day
	AvailabilityStatusSlot        AvailabilityStatus = "slot"        // event fits a declared slot
	AvailabilityStatusNone        AvailabilityStatus = "none"        // no availability declared for the date
	AvailabilityStatusUnavailable AvailabilityStatus = "unavailable" // declared unavailable
	AvailabilityStatusConflict    AvailabilityStatus = "conflict"    // declared slots do not cover the event
)

// classifySlots resolves the availability status of an event window against
// the declared slot tokens. Compatibility wins over an unavailable tag when
// both are present; unparseable tokens are skipped.
func classifySlots(slots []string, event timeRange) AvailabilityStatus {
	if len(slots) == 0 {
		return AvailabilityStatusNone
	}

	unavailable := false
	for _, token := range slots {
		if token == models.SlotFullDay {
			return AvailabilityStatusFull
		}
		if isUnavailableToken(token) {
			unavailable = true
			continue
		}
		slot, err := parseSlotToken(token)
		if err != nil {
			continue
		}
		if slot == event || slot.contains(event) {
			return AvailabilityStatusSlot
		}
	}

	if unavailable {
		return AvailabilityStatusUnavailable
	}
	return AvailabilityStatusConflict
}

package utils

import (
	"time"

	"preferred-observer/src/logger"
)

// MarketScheduler gates background work on the trading session of one reference symbol.
type MarketScheduler struct {
	Calendar *TradingCalendar
	Logger   *logger.Logger
	Now      func() time.Time
}

// -----------------------------------------------------------------------------

func NewMarketScheduler(symbol string, l *logger.Logger) *MarketScheduler {
	cal := GetCalendar(symbol)
	if cal.Fallback {
		l.Warning("MarketScheduler: no calendar for %s, using weekday 09:30-16:00 New York hours", symbol)
	} else {
		l.Info("MarketScheduler: %s follows the %s calendar", symbol, cal.MIC)
	}

	return &MarketScheduler{
		Calendar: cal,
		Logger:   l,
		Now:      time.Now,
	}
}

// -----------------------------------------------------------------------------

// MarketOpen reports whether the session is open right now.
func (ms *MarketScheduler) MarketOpen() bool {
	return ms.Calendar.IsOpenAt(ms.Now().UTC())
}

// TradingDay reports whether today is a business day on the calendar.
func (ms *MarketScheduler) TradingDay() bool {
	return ms.Calendar.IsTradingDay(ms.Now().UTC())
}

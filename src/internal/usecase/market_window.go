package usecase

import (
	"time"

	"github.com/spf13/viper"
)

// marketWindow is a daily time-of-day range during which trading is allowed.
// The garden produce market and the stock market carry separate windows.
type marketWindow struct {
	OpenHour  int
	CloseHour int
	Location  *time.Location
}

func loadMarketWindow(v *viper.Viper, prefix string) marketWindow {
	loc, err := time.LoadLocation(v.GetString("market.timezone"))
	if err != nil {
		loc = time.Local
	}
	return marketWindow{
		OpenHour:  v.GetInt(prefix + ".open_hour"),
		CloseHour: v.GetInt(prefix + ".close_hour"),
		Location:  loc,
	}
}

func (w marketWindow) IsOpen(now time.Time) bool {
	h := now.In(w.Location).Hour()
	return h >= w.OpenHour && h < w.CloseHour
}

package cli

import (
	"io"
	"testing"
	"time"

	"datefield-cli/internal/datefield"
	"datefield-cli/internal/store"

	"github.com/charmbracelet/log"
)

func TestResolveToday(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		app     App
		want    datefield.DateParts
		wantErr bool
	}{
		{name: "pinned", app: App{Today: "2020-02-29"}, want: datefield.DateParts{Year: 2020, Month: 2, Day: 29}},
		{name: "pinned not iso", app: App{Today: "10/06/2024"}, wantErr: true},
		{name: "pinned impossible", app: App{Today: "2021-02-29"}, wantErr: true},
		{name: "utc", app: App{TZ: "UTC"}, want: datefield.DateParts{Year: 2024, Month: 6, Day: 10}},
		{name: "ahead of utc", app: App{TZ: "Pacific/Kiritimati"}, want: datefield.DateParts{Year: 2024, Month: 6, Day: 11}},
		{name: "behind utc", app: App{TZ: "Pacific/Pago_Pago"}, want: datefield.DateParts{Year: 2024, Month: 6, Day: 10}},
		{name: "config timezone", app: App{cfg: &store.GlobalConfig{Timezone: "Pacific/Kiritimati"}}, want: datefield.DateParts{Year: 2024, Month: 6, Day: 11}},
		{name: "bad zone", app: App{TZ: "Mars/Olympus"}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := tt.app
			app.logger = log.New(io.Discard)
			got, err := app.resolveToday(now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveToday: %v", err)
			}
			if got != tt.want {
				t.Fatalf("unexpected today:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}

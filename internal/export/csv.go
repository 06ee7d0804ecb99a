package export

import (
	"encoding/csv"
	"os"
	"sort"
	"strconv"

	"portfolio-dispatch/internal/dispatch"
)

// WriteScheduleCSV writes a schedule in long format, one row per
// (scenario, step, asset, metric). Deterministic runs leave the scenario
// column empty. Rows are emitted in sorted asset-name order so output is
// stable across runs.
func WriteScheduleCSV(path string, sched *dispatch.Schedule) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"scenario", "step", "name", "kind", "metric", "value"}
	if err := w.Write(header); err != nil {
		return err
	}

	write := func(name, kind, metric string, t *dispatch.Table) error {
		if t == nil {
			return nil
		}
		for s, series := range t.Values {
			scenario := ""
			if t.Scenarios != nil {
				scenario = t.Scenarios[s]
			}
			for step, v := range series {
				row := []string{
					scenario,
					strconv.Itoa(step),
					name,
					kind,
					metric,
					strconv.FormatFloat(v, 'f', 6, 64),
				}
				if err := w.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for _, name := range sortedKeys(sched.Generators) {
		g := sched.Generators[name]
		if err := write(name, "generator", "power_mw", g.Power); err != nil {
			return err
		}
		if err := write(name, "generator", "status", g.Status); err != nil {
			return err
		}
		if err := write(name, "generator", "startup", g.Startup); err != nil {
			return err
		}
		if err := write(name, "generator", "shutdown", g.Shutdown); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(sched.Batteries) {
		b := sched.Batteries[name]
		if err := write(name, "battery", "net_power_mw", b.NetPower); err != nil {
			return err
		}
		if err := write(name, "battery", "state_of_charge_mwh", b.StateOfCharge); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(sched.Markets) {
		m := sched.Markets[name]
		if err := write(name, "market", "buy_volume_mw", m.BuyVolume); err != nil {
			return err
		}
		if err := write(name, "market", "sell_volume_mw", m.SellVolume); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(sched.Loads) {
		l := sched.Loads[name]
		if err := write(name, "load", "increase_mw", l.Increase); err != nil {
			return err
		}
		if err := write(name, "load", "decrease_mw", l.Decrease); err != nil {
			return err
		}
	}

	return w.Error()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

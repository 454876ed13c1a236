package forecast

import (
	"sync"
	"testing"

	"github.com/iwvelando/fleet-forecast/pkg/depreciation"
)

func BenchmarkComputeSchedule(b *testing.B) {
	models := []depreciation.Model{depreciation.Monthly, depreciation.Annual, depreciation.HeavyUse}
	for _, model := range models {
		params := scenarioA()
		params.UnitCount = 200
		params.DepreciationModel = model
		b.Run(model.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := ComputeSchedule(params); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func TestComputeScheduleConcurrentCallers(t *testing.T) {
	expected, err := ComputeSchedule(scenarioA())
	if err != nil {
		t.Fatalf("ComputeSchedule() error = %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := ComputeSchedule(scenarioA())
			if err != nil {
				errs <- err.Error()
				return
			}
			if result.Schedule[72] != expected.Schedule[72] {
				errs <- "concurrent result differs"
			}
		}()
	}
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Error(msg)
	}
}

package benchmark

import (
	"fmt"
	"testing"

	"github.com/lifedrawing-art/backend/internal/export"
	"github.com/rs/zerolog"
)

// syntheticRaw builds a legacy-shaped export with n subscriber rows, n model
// rows and n calendar rows, all resolvable against one static venue.
func syntheticRaw(n int) export.RawExport {
	artists := &export.Sheet{Title: "artists"}
	models := &export.Sheet{Title: "models"}
	calendar := &export.Sheet{Title: "calendar"}

	for i := 0; i < n; i++ {
		artists.Records = append(artists.Records, export.Row{
			"name":         fmt.Sprintf("Artist Person %06d", i),
			"emailaddress": fmt.Sprintf("artist%06d@test.art", i),
		})
		models.Records = append(models.Records, export.Row{
			"fullname":     fmt.Sprintf("Model Person %06d", i),
			"emailaddress": fmt.Sprintf("model%06d@test.art", i),
			"sex":          "female",
		})
		calendar.Records = append(calendar.Records, export.Row{
			"pk":       fmt.Sprintf("row-%06d", i),
			"date":     "2024-03-05",
			"start":    "19",
			"fullname": fmt.Sprintf("Model Person %06d", i),
			"inperson": "12",
			"duration": "2",
		})
	}

	return export.RawExport{
		"artists":  artists,
		"models":   models,
		"calendar": calendar,
	}
}

func syntheticVenues() []export.StaticVenue {
	return []export.StaticVenue{
		{
			Name:     "Homerton Library",
			Postcode: "E9 6AS",
			City:     "London",
		},
	}
}

// BenchmarkPipelineRun benchmarks the whole import over 1000-row sheets
func BenchmarkPipelineRun(b *testing.B) {
	raw := syntheticRaw(1000)
	pipeline := &export.Pipeline{
		Raw:          raw,
		StaticVenues: syntheticVenues(),
		Log:          zerolog.Nop(),
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, _, err := pipeline.Run(); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportMetric(float64(3000*b.N)/b.Elapsed().Seconds(), "rows/sec")
}

// BenchmarkBuildUsers benchmarks directory synthesis alone
func BenchmarkBuildUsers(b *testing.B) {
	raw := syntheticRaw(1000)
	log := zerolog.Nop()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		export.BuildUsers(raw, export.UserSynthOptions{}, log)
	}
}

// BenchmarkSlugify benchmarks slug normalization
func BenchmarkSlugify(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		export.Slugify("  Señora  Águeda O'Connell-Smith  ")
	}
}

// BenchmarkHashPassword benchmarks the legacy credential digest
func BenchmarkHashPassword(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		export.HashPassword("Host@Venue.Art ", export.DefaultPassword)
	}
}

// BenchmarkDirectoryPut benchmarks first-write-wins insertion with conflicts
func BenchmarkDirectoryPut(b *testing.B) {
	entries := make([]*export.Entry, 1000)
	for i := range entries {
		entries[i] = &export.Entry{
			Slug:     fmt.Sprintf("person-%04d", i%500), // half collide
			Fullname: fmt.Sprintf("Person %04d", i),
		}
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		dir := export.NewDirectory()
		for _, e := range entries {
			dir.Put(e)
		}
	}
}

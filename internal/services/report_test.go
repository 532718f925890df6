package services_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/edudata/unidex/internal/models"
	"github.com/edudata/unidex/internal/services"
	"github.com/edudata/unidex/internal/store"
	"github.com/edudata/unidex/internal/store/migrations"
)

var _ = Describe("Reporter", func() {
	var (
		ctx      context.Context
		db       *sql.DB
		reporter *services.Reporter
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		st := store.NewStore(db)
		reporter = services.NewReporter(st)

		catalog := &stubCatalog{batches: map[string][]models.RawRecord{
			"Testland": {
				{Name: "Zeta Institute of Technology", Country: "Testland"},
				{Name: "Alpha U", Country: "Testland"},
			},
			"Otherland": {
				{Name: "Beta Technical College", Country: "Otherland"},
			},
			"Emptyland": {},
		}}
		_, err = services.NewIngestor(st, catalog, []string{"Testland", "Otherland", "Emptyland"}).Run(ctx)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	It("should report per-country totals descending", func() {
		totals, err := reporter.CountryTotals(ctx)
		Expect(err).NotTo(HaveOccurred())
		// Emptyland produced no records, so no country row exists for it.
		Expect(totals).To(Equal([]models.CountryCount{
			{Country: "Testland", Total: 2},
			{Country: "Otherland", Total: 1},
		}))
	})

	It("should list one country's universities alphabetically", func() {
		universities, err := reporter.UniversitiesByCountry(ctx, "Testland", 20, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(universities).To(HaveLen(2))
		Expect(universities[0].Name).To(Equal("Alpha U"))
		Expect(universities[1].Name).To(Equal("Zeta Institute of Technology"))
	})

	It("should skip past rows when an offset is given", func() {
		universities, err := reporter.UniversitiesByCountry(ctx, "Testland", 20, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(universities).To(HaveLen(1))
		Expect(universities[0].Name).To(Equal("Zeta Institute of Technology"))
	})

	It("should search by name substring across countries", func() {
		universities, err := reporter.Search(ctx, "Tech", 20, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(universities).To(HaveLen(2))
		Expect(universities[0].Name).To(Equal("Beta Technical College"))
		Expect(universities[0].CountryName).To(Equal("Otherland"))
		Expect(universities[1].Name).To(Equal("Zeta Institute of Technology"))
	})

	It("should return nothing for an unknown country", func() {
		universities, err := reporter.UniversitiesByCountry(ctx, "Atlantis", 20, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(universities).To(BeEmpty())
	})
})

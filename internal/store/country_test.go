package store_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/edudata/unidex/internal/store"
	"github.com/edudata/unidex/internal/store/migrations"
	srvErrors "github.com/edudata/unidex/pkg/errors"
)

var _ = Describe("CountryStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("GetID", func() {
		// Given an empty store
		// When we look up a country that was never created
		// Then it should return CountryNotFoundError
		It("should return CountryNotFoundError for an unknown name", func() {
			_, err := s.Countries().GetID(ctx, "Atlantis")

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsCountryNotFoundError(err)).To(BeTrue())
		})
	})

	Context("GetOrCreate", func() {
		// Given an empty store
		// When we resolve a new country name
		// Then a row is created and a positive identifier assigned
		It("should create a country on first sight", func() {
			id, err := s.Countries().GetOrCreate(ctx, "Testland")

			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(BeNumerically(">", 0))
		})

		// Given a country already created
		// When we resolve the same name again
		// Then the existing identifier is returned and no second row appears
		It("should reuse the identifier on repeated calls", func() {
			first, err := s.Countries().GetOrCreate(ctx, "Testland")
			Expect(err).NotTo(HaveOccurred())

			second, err := s.Countries().GetOrCreate(ctx, "Testland")
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))

			var count int
			err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM countries`).Scan(&count)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))
		})

		// Given two different country names
		// When both are resolved
		// Then they receive distinct identifiers
		It("should assign distinct identifiers to distinct names", func() {
			first, err := s.Countries().GetOrCreate(ctx, "Testland")
			Expect(err).NotTo(HaveOccurred())

			second, err := s.Countries().GetOrCreate(ctx, "Otherland")
			Expect(err).NotTo(HaveOccurred())
			Expect(second).NotTo(Equal(first))
		})

		// Given a country created inside a committed transaction
		// When the name is resolved outside the transaction
		// Then the same identifier is visible
		It("should persist a country created inside a transaction", func() {
			var created int64
			err := s.Transaction(ctx, func(tx *store.Store) error {
				var err error
				created, err = tx.Countries().GetOrCreate(ctx, "Testland")
				return err
			})
			Expect(err).NotTo(HaveOccurred())

			id, err := s.Countries().GetID(ctx, "Testland")
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(created))
		})
	})
})

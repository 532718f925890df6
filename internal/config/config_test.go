package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/edudata/unidex/internal/config"
)

var _ = Describe("Load", func() {
	It("should apply compiled-in defaults without a config file", func() {
		cfg, err := config.Load("")
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Store.DataFile).To(Equal("universities.db"))
		Expect(cfg.Catalog.BaseURL).To(Equal("http://universities.hipolabs.com/search"))
		Expect(cfg.Catalog.Timeout).To(Equal(30 * time.Second))
		Expect(cfg.Catalog.MaxAttempts).To(Equal(uint(3)))
		Expect(cfg.Catalog.InitialBackoff).To(Equal(1500 * time.Millisecond))
		Expect(cfg.Catalog.Multiplier).To(Equal(1.5))
		Expect(cfg.Report.Country).To(Equal("Brazil"))
		Expect(cfg.Report.SearchTerm).To(Equal("Tech"))
		Expect(cfg.Report.Limit).To(Equal(uint64(20)))
		Expect(cfg.Server.Mode).To(Equal("dev"))
		Expect(cfg.Server.HTTPPort).To(Equal(8000))
		Expect(cfg.LogLevel).To(Equal("info"))
	})

	It("should fall back to the built-in country list", func() {
		cfg, err := config.Load("")
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Ingest.Countries).To(Equal(config.DefaultCountries()))
		Expect(cfg.Ingest.Countries).To(HaveLen(32))
		Expect(cfg.Ingest.Countries).To(ContainElement("Brazil"))
	})

	It("should let a config file override defaults", func() {
		path := filepath.Join(GinkgoT().TempDir(), "unidex.yaml")
		err := os.WriteFile(path, []byte(`
store:
  data_file: /tmp/custom.db
catalog:
  max_attempts: 5
ingest:
  countries:
    - Testland
log_level: debug
`), 0o600)
		Expect(err).NotTo(HaveOccurred())

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Store.DataFile).To(Equal("/tmp/custom.db"))
		Expect(cfg.Catalog.MaxAttempts).To(Equal(uint(5)))
		Expect(cfg.Ingest.Countries).To(Equal([]string{"Testland"}))
		Expect(cfg.LogLevel).To(Equal("debug"))
		// untouched keys keep their defaults
		Expect(cfg.Catalog.Timeout).To(Equal(30 * time.Second))
	})

	It("should let the environment override defaults", func() {
		GinkgoT().Setenv("UNIDEX_STORE_DATA_FILE", "/tmp/env.db")
		GinkgoT().Setenv("UNIDEX_LOG_LEVEL", "warn")

		cfg, err := config.Load("")
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Store.DataFile).To(Equal("/tmp/env.db"))
		Expect(cfg.LogLevel).To(Equal("warn"))
	})

	It("should fail on a missing config file", func() {
		_, err := config.Load("/does/not/exist.yaml")
		Expect(err).To(HaveOccurred())
	})
})

package common

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LoadConfig", func() {
	It("applies defaults when the environment is empty", func() {
		for _, key := range []string{
			"DB_DRIVER", "DB_URL", "PARSER_MIN_CONFIDENCE", "PARSER_WORKERS",
			"PARSER_QUEUE_SIZE", "PARSER_JOB_TIMEOUT", "EXPORT_PATH",
		} {
			GinkgoT().Setenv(key, "")
		}
		cfg := LoadConfig()
		Expect(cfg.Database.Driver).To(Equal("sqlite"))
		Expect(cfg.Database.DSN).To(Equal("receipts.db"))
		Expect(cfg.Parser.MinConfidence).To(BeNumerically("~", 0.60, 1e-9))
		Expect(cfg.Parser.Workers).To(Equal(4))
		Expect(cfg.Parser.QueueSize).To(Equal(256))
		Expect(cfg.Parser.JobTimeout).To(Equal(time.Minute))
		Expect(cfg.Export.OutputPath).To(Equal("./receipts.xlsx"))
	})

	It("reads overrides from the environment", func() {
		GinkgoT().Setenv("DB_DRIVER", "postgres")
		GinkgoT().Setenv("DB_URL", "postgres://localhost/receipts")
		GinkgoT().Setenv("PARSER_WORKERS", "8")
		GinkgoT().Setenv("PARSER_MIN_CONFIDENCE", "0.75")
		GinkgoT().Setenv("PARSER_JOB_TIMEOUT", "2m")

		cfg := LoadConfig()
		Expect(cfg.Database.Driver).To(Equal("postgres"))
		Expect(cfg.Database.DSN).To(Equal("postgres://localhost/receipts"))
		Expect(cfg.Parser.Workers).To(Equal(8))
		Expect(cfg.Parser.MinConfidence).To(BeNumerically("~", 0.75, 1e-9))
		Expect(cfg.Parser.JobTimeout).To(Equal(2 * time.Minute))
	})

	It("keeps defaults for malformed values", func() {
		GinkgoT().Setenv("PARSER_WORKERS", "many")
		cfg := LoadConfig()
		Expect(cfg.Parser.Workers).To(Equal(4))
	})
})

var _ = Describe("Config validation", func() {
	var cfg *Config

	BeforeEach(func() {
		cfg = LoadConfig()
	})

	It("accepts the default configuration", func() {
		Expect(cfg.Validate()).To(Succeed())
	})

	It("rejects an unknown driver", func() {
		cfg.Database.Driver = "oracle"
		Expect(cfg.Validate()).NotTo(Succeed())
	})

	It("rejects an empty DSN", func() {
		cfg.Database.DSN = ""
		Expect(cfg.Validate()).NotTo(Succeed())
	})

	It("rejects an out-of-range confidence threshold", func() {
		cfg.Parser.MinConfidence = 1.5
		Expect(cfg.Validate()).NotTo(Succeed())
	})

	It("rejects a non-positive worker count", func() {
		cfg.Parser.Workers = 0
		Expect(cfg.Validate()).NotTo(Succeed())
	})
})

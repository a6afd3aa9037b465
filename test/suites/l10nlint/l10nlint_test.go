package test_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/golang/mock/gomock"
	"github.com/loopcontext/l10nlint"
	"github.com/loopcontext/l10nlint/test"
	mock_l10nlint "github.com/loopcontext/l10nlint/test/mock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const catalogTwoKeys = `{
  "sourceLanguage": "en",
  "strings": {
    "home_title": {"localizations": {"en": {"stringUnit": {"state": "translated", "value": "Home"}}}},
    "detail_subtitle": {}
  },
  "version": "1.0"
}`

var _ = Describe("Localization Linter", func() {
	var fixture *test.Fixture

	BeforeEach(func() {
		tmpDir, err := os.MkdirTemp("", "l10nlint-suite-*")
		Expect(err).NotTo(HaveOccurred())
		fixture = &test.Fixture{Root: tmpDir, Files: map[string]string{}}
	})

	AfterEach(func() {
		Expect(fixture.Remove()).To(Succeed())
	})

	newLinter := func(mutate func(*l10nlint.Config)) l10nlint.Linter {
		Expect(fixture.Write()).To(Succeed())
		cfg := l10nlint.Config{
			CatalogPath: fixture.Path("Languages/Localizable.xcstrings"),
			SourceRoots: []string{fixture.Root},
		}
		if mutate != nil {
			mutate(&cfg)
		}
		lint, err := l10nlint.NewLinter(cfg)
		Expect(err).NotTo(HaveOccurred())
		return lint
	}

	It("should pass when catalog and source are in sync", func() {
		fixture.Files["Languages/Localizable.xcstrings"] = catalogTwoKeys
		fixture.Files["Sources/HomeView.swift"] = `let t = L10n.string("home_title")`
		fixture.Files["Sources/DetailView.swift"] = `Text(l10n: "detail_subtitle")`

		report, err := newLinter(nil).Check()
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Clean()).To(BeTrue())
		Expect(report.ExitCode()).To(Equal(0))
		Expect(report.UsedKeys).To(Equal(2))
		Expect(report.CatalogKeys).To(Equal(2))
	})

	It("should list missing keys sorted and fail the run", func() {
		fixture.Files["Languages/Localizable.xcstrings"] = catalogTwoKeys
		fixture.Files["Sources/Checkout.swift"] = `
			let t = L10n.string("home_title")
			let z = L10n.string("zz_checkout_total")
			let a = L10n.string("aa_checkout_title")
		`

		report, err := newLinter(nil).Check()
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Missing).To(Equal([]string{"aa_checkout_title", "zz_checkout_total"}))
		Expect(report.ExitCode()).To(Equal(1))
	})

	It("should keep commented-out references out of the reconciliation", func() {
		fixture.Files["Languages/Localizable.xcstrings"] = catalogTwoKeys
		fixture.Files["Sources/Old.swift"] = `
			// let gone = L10n.string("aa_commented_key")
			/* L10n.string("bb_commented_key") */
		`

		report, err := newLinter(nil).Check()
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Missing).NotTo(ContainElement("aa_commented_key"))
		Expect(report.Missing).NotTo(ContainElement("bb_commented_key"))
	})

	It("should warn about unused catalog keys without failing", func() {
		fixture.Files["Languages/Localizable.xcstrings"] = catalogTwoKeys
		fixture.Files["Sources/HomeView.swift"] = `let t = L10n.string("home_title")`

		report, err := newLinter(nil).Check()
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Unused).To(Equal([]string{"detail_subtitle"}))
		Expect(report.ExitCode()).To(Equal(0))
		Expect(report.Failed()).To(BeFalse())
	})

	It("should only trust recognized lookup calls under the call-site strategy", func() {
		fixture.Files["Languages/Localizable.xcstrings"] = catalogTwoKeys
		fixture.Files["Sources/HomeView.swift"] = `
			let t = L10n.string("home_title")
			let loose = "detail_subtitle"
		`

		report, err := newLinter(func(cfg *l10nlint.Config) {
			cfg.Strategy = l10nlint.StrategyCallSite
		}).Check()
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Unused).To(Equal([]string{"detail_subtitle"}))
		Expect(report.Strategy).To(Equal(l10nlint.StrategyCallSite))
	})

	It("should fail only under the heuristic when a loose literal has no catalog entry", func() {
		fixture.Files["Languages/Localizable.xcstrings"] = `{"strings": {"greeting_hello": {}, "unused_key": {}}}`
		fixture.Files["Sources/App.swift"] = `
			Text(l10n: "greeting_hello")
			let candidate = "missing_key_test"
		`

		heuristic, err := newLinter(nil).Check()
		Expect(err).NotTo(HaveOccurred())
		Expect(heuristic.Missing).To(Equal([]string{"missing_key_test"}))
		Expect(heuristic.Unused).To(Equal([]string{"unused_key"}))
		Expect(heuristic.ExitCode()).To(Equal(1))

		callSite, err := newLinter(func(cfg *l10nlint.Config) {
			cfg.Strategy = l10nlint.StrategyCallSite
		}).Check()
		Expect(err).NotTo(HaveOccurred())
		Expect(callSite.Missing).To(BeEmpty())
		Expect(callSite.Unused).To(Equal([]string{"unused_key"}))
		Expect(callSite.ExitCode()).To(Equal(0))
	})

	It("should count the same loose literal as used under the heuristic", func() {
		fixture.Files["Languages/Localizable.xcstrings"] = catalogTwoKeys
		fixture.Files["Sources/HomeView.swift"] = `
			let t = L10n.string("home_title")
			let loose = "detail_subtitle"
		`

		report, err := newLinter(nil).Check()
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Unused).To(BeEmpty())
		Expect(report.UsedKeys).To(Equal(2))
	})

	It("should suppress ignored findings from both listings", func() {
		fixture.Files["Languages/Localizable.xcstrings"] = `{"strings": {"debug_menu_title": {}}}`
		fixture.Files["Sources/App.swift"] = `let d = L10n.string("debug_overlay_text")`

		report, err := newLinter(func(cfg *l10nlint.Config) {
			cfg.IgnoreKeys = []string{"debug_*"}
		}).Check()
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Missing).To(BeEmpty())
		Expect(report.Unused).To(BeEmpty())
		Expect(report.Ignored).To(Equal(2))
		Expect(report.ExitCode()).To(Equal(0))
	})

	It("should report a missing catalog as not found", func() {
		fixture.Files["Sources/App.swift"] = `let t = L10n.string("any_app_key")`

		_, err := newLinter(nil).Check()
		Expect(err).To(HaveOccurred())
		Expect(l10nlint.IsNotFound(err)).To(BeTrue())
	})

	It("should report a missing source root as not found", func() {
		fixture.Files["Languages/Localizable.xcstrings"] = catalogTwoKeys

		_, err := newLinter(func(cfg *l10nlint.Config) {
			cfg.SourceRoots = []string{fixture.Path("NoSuchDir")}
		}).Check()
		Expect(err).To(HaveOccurred())
		Expect(l10nlint.IsNotFound(err)).To(BeTrue())
	})

	It("should reject a catalog whose entries field is not an object", func() {
		fixture.Files["Languages/Localizable.xcstrings"] = `{"strings": ["home_title"]}`

		_, err := newLinter(nil).Check()
		Expect(err).To(HaveOccurred())
		Expect(l10nlint.IsParse(err)).To(BeTrue())
	})

	It("should render a text report with severity markers", func() {
		prev := color.NoColor
		color.NoColor = true
		defer func() { color.NoColor = prev }()

		fixture.Files["Languages/Localizable.xcstrings"] = catalogTwoKeys
		fixture.Files["Sources/App.swift"] = `let m = L10n.string("brand_new_key")`

		report, err := newLinter(nil).Check()
		Expect(err).NotTo(HaveOccurred())
		var buf bytes.Buffer
		Expect(report.Render(&buf, l10nlint.FormatText)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("FAIL missing catalog entries (1):"))
		Expect(buf.String()).To(ContainSubstring("  - brand_new_key"))
		Expect(buf.String()).To(ContainSubstring("WARN unused catalog keys (2):"))
	})

	It("should render JSON that decodes back to the same report", func() {
		fixture.Files["Languages/Localizable.xcstrings"] = catalogTwoKeys
		fixture.Files["Sources/App.swift"] = `let m = L10n.string("brand_new_key")`

		report, err := newLinter(nil).Check()
		Expect(err).NotTo(HaveOccurred())
		var buf bytes.Buffer
		Expect(report.Render(&buf, l10nlint.FormatJSON)).To(Succeed())
		var decoded l10nlint.Report
		Expect(json.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
		Expect(decoded.Missing).To(Equal(report.Missing))
		Expect(decoded.Unused).To(Equal(report.Unused))
		Expect(decoded.Strategy).To(Equal(report.Strategy))
	})
})

var _ = Describe("Linter with mocked collectors", func() {
	var ctrl *gomock.Controller

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	newMockedLinter := func(catalog, code l10nlint.KeyCollector) l10nlint.Linter {
		lint, err := l10nlint.NewLinter(l10nlint.Config{
			CatalogSource: catalog,
			CodeSource:    code,
		})
		Expect(err).NotTo(HaveOccurred())
		return lint
	}

	It("should reconcile whatever the collectors produce", func() {
		catalogMock := mock_l10nlint.NewMockKeyCollector(ctrl)
		codeMock := mock_l10nlint.NewMockKeyCollector(ctrl)
		catalogMock.EXPECT().CollectKeys().Return(l10nlint.NewKeySet("shared_key", "stale_key"), nil)
		codeMock.EXPECT().CollectKeys().Return(l10nlint.NewKeySet("shared_key", "fresh_key"), nil)

		report, err := newMockedLinter(catalogMock, codeMock).Check()
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Missing).To(Equal([]string{"fresh_key"}))
		Expect(report.Unused).To(Equal([]string{"stale_key"}))
		Expect(report.UsedKeys).To(Equal(1))
	})

	It("should not scan source when the catalog fails to load", func() {
		catalogMock := mock_l10nlint.NewMockKeyCollector(ctrl)
		codeMock := mock_l10nlint.NewMockKeyCollector(ctrl)
		catalogMock.EXPECT().CollectKeys().Return(nil, errors.New("catalog unavailable"))

		_, err := newMockedLinter(catalogMock, codeMock).Check()
		Expect(err).To(MatchError(ContainSubstring("catalog unavailable")))
	})

	It("should propagate scanner failures", func() {
		catalogMock := mock_l10nlint.NewMockKeyCollector(ctrl)
		codeMock := mock_l10nlint.NewMockKeyCollector(ctrl)
		catalogMock.EXPECT().CollectKeys().Return(l10nlint.NewKeySet(), nil)
		codeMock.EXPECT().CollectKeys().Return(nil, errors.New("tree walk failed"))

		_, err := newMockedLinter(catalogMock, codeMock).Check()
		Expect(err).To(MatchError(ContainSubstring("tree walk failed")))
	})

	It("should serve the individual key set accessors", func() {
		catalogMock := mock_l10nlint.NewMockKeyCollector(ctrl)
		codeMock := mock_l10nlint.NewMockKeyCollector(ctrl)
		catalogMock.EXPECT().CollectKeys().Return(l10nlint.NewKeySet("catalog_side_key"), nil)
		codeMock.EXPECT().CollectKeys().Return(l10nlint.NewKeySet("code_side_key"), nil)

		lint := newMockedLinter(catalogMock, codeMock)
		catalogKeys, err := lint.CatalogKeys()
		Expect(err).NotTo(HaveOccurred())
		Expect(catalogKeys.Sorted()).To(Equal([]string{"catalog_side_key"}))

		codeKeys, err := lint.CodeKeys()
		Expect(err).NotTo(HaveOccurred())
		Expect(codeKeys.Sorted()).To(Equal([]string{"code_side_key"}))
	})
})

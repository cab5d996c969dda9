package params

import (
	"errors"
	"math"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/edp1096/toy-cell/internal/consts"
)

var _ = Describe("Parameter sets", func() {
	DescribeTable("constructor output",
		func(build func() *Values, name string, size int, citations []string) {
			a, b := build(), build()

			Expect(a.Name()).To(Equal(name))
			Expect(a.Len()).To(Equal(size))
			Expect(cmp.Diff(a.Keys(), b.Keys())).To(BeEmpty())
			Expect(a.Citations()).To(Equal(citations))
			Expect(a.Text(KeyChemistry)).To(Equal("lithium_ion"))
			Expect(a.KindOf(KeyCitations)).To(Equal(KindCitations))
		},
		Entry("Ecker2015", Ecker2015, "Ecker2015", 109,
			[]string{"Ecker2015i", "Ecker2015ii", "Zhao2018", "Hales2019", "Richardson2020", "OKane2020"}),
		Entry("OKane2022", OKane2022, "OKane2022", 133,
			[]string{"OKane2022", "OKane2020", "Chen2020", "Ai2020"}),
	)

	It("builds a fresh set on every call", func() {
		a := OKane2022()
		Expect(a.Update(map[string]any{"Separator porosity": 0.5}, true)).To(Succeed())
		Expect(OKane2022().Float("Separator porosity")).To(Equal(0.47))

		c := a.Citations()
		c[0] = "changed"
		Expect(a.Citations()[0]).To(Equal("OKane2022"))
	})

	It("stores integers as scalars", func() {
		Expect(Ecker2015().Scalar("Contact resistance [Ohm]")).To(Equal(0.0))
	})

	It("evaluates the graphite diffusivity at its reference temperature", func() {
		d, err := OKane2022().Diffusivity("Negative particle diffusivity [m2.s-1]")
		Expect(err).NotTo(HaveOccurred())
		Expect(d(0.5, 298.15)).To(Equal(3.9e-14))
	})
})

var _ = Describe("Bound parameters", func() {
	var v *Values

	BeforeEach(func() {
		v = OKane2022()
	})

	It("reads the plating rate constant at evaluation time", func() {
		plating, err := v.Plating("Exchange-current density for plating [A.m-2]")
		Expect(err).NotTo(HaveOccurred())
		Expect(plating(1000, 5, 298.15)).To(BeNumerically("~", consts.FARADAY*1e-9*1000, 1e-12))

		Expect(v.Update(map[string]any{KeyPlatingRateConstant: 2e-9}, true)).To(Succeed())
		Expect(plating(1000, 5, 298.15)).To(BeNumerically("~", consts.FARADAY*2e-9*1000, 1e-12))

		stripping, err := v.Plating("Exchange-current density for stripping [A.m-2]")
		Expect(err).NotTo(HaveOccurred())
		Expect(stripping(1000, 5, 298.15)).To(BeNumerically("~", consts.FARADAY*2e-9*5, 1e-15))
	})

	It("decays dead lithium relative to the initial SEI thickness", func() {
		rate, err := v.Thickness("Dead lithium decay rate [s-1]")
		Expect(err).NotTo(HaveOccurred())
		Expect(rate(5e-9)).To(BeNumerically("~", 1e-6, 1e-18))
		Expect(rate(1e-8)).To(BeNumerically("~", 0.5e-6, 1e-18))
	})

	It("uses the positive partial molar volume and maximum concentration", func() {
		Expect(v.Evaluate("Positive electrode volume change", 0.5)).
			To(BeNumerically("~", 1.25e-5*63104*0.5, 1e-15))
	})

	It("derives the Ecker electrolyte diffusivity from the set's conductivity", func() {
		e := Ecker2015()
		Expect(e.Evaluate("Electrolyte diffusivity [m2.s-1]", 1000, 296)).
			To(BeNumerically("~", 2.4662573750754584e-10, 1e-18))

		Expect(e.Update(map[string]any{KeyElectrolyteConductivity: 1.0}, true)).To(Succeed())
		want := consts.BOLTZMANN / (consts.FARADAY * consts.CHARGE) * 296 / 1000
		Expect(e.Evaluate("Electrolyte diffusivity [m2.s-1]", 1000, 296)).
			To(BeNumerically("~", want, 1e-20))
	})

	It("evaluates to NaN when a bound parameter is missing", func() {
		delete(v.entries, KeyDeadLithiumDecayConstant)
		rate, err := v.Thickness("Dead lithium decay rate [s-1]")
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsNaN(rate(5e-9))).To(BeTrue())
	})

	It("rebinds copies to themselves", func() {
		c := v.Copy()
		Expect(c.Update(map[string]any{KeyInitialSEIThickness: 1e-8}, true)).To(Succeed())

		Expect(c.Evaluate("Dead lithium decay rate [s-1]", 1e-8)).To(BeNumerically("~", 1e-6, 1e-18))
		Expect(v.Evaluate("Dead lithium decay rate [s-1]", 1e-8)).To(BeNumerically("~", 0.5e-6, 1e-18))
		Expect(cmp.Diff(v.Keys(), c.Keys())).To(BeEmpty())
	})
})

var _ = Describe("Values", func() {
	var v *Values

	BeforeEach(func() {
		v = Ecker2015()
	})

	Context("scalar access", func() {
		It("returns numbers", func() {
			Expect(v.Scalar("Separator porosity")).To(Equal(0.508))
			Expect(v.Float("Reference temperature [K]")).To(Equal(296.15))
		})

		It("reports missing and non-scalar parameters", func() {
			_, err := v.Scalar("Nonexistent [m]")
			Expect(errors.Is(err, ErrNotFound)).To(BeTrue())

			_, err = v.Scalar("Negative electrode OCP [V]")
			Expect(errors.Is(err, ErrWrongKind)).To(BeTrue())

			Expect(math.IsNaN(v.Float("Nonexistent [m]"))).To(BeTrue())
			Expect(math.IsNaN(v.Float(KeyChemistry))).To(BeTrue())
		})
	})

	Context("typed accessors", func() {
		It("wraps scalars in constant functions", func() {
			entropic, err := v.Stoichiometry("Negative electrode OCP entropic change [V.K-1]")
			Expect(err).NotTo(HaveOccurred())
			Expect(entropic(0.3)).To(Equal(0.0))
		})

		It("rejects functions of another calling convention", func() {
			_, err := v.Diffusivity("Electrolyte conductivity [S.m-1]")
			Expect(errors.Is(err, ErrWrongKind)).To(BeTrue())

			_, err = v.ExchangeCurrent("citations")
			Expect(errors.Is(err, ErrWrongKind)).To(BeTrue())

			_, err = v.Temperature("Negative electrode cracking rate")
			Expect(errors.Is(err, ErrNotFound)).To(BeTrue())
		})
	})

	Context("Evaluate", func() {
		It("passes positional arguments in Args order", func() {
			Expect(v.KindOf("Negative electrode exchange-current density [A.m-2]").Args()).
				To(Equal([]string{"ce", "cs", "csmax", "T"}))

			j0, err := v.Evaluate("Negative electrode exchange-current density [A.m-2]", 1000, 15000, 31920, 296.15)
			Expect(err).NotTo(HaveOccurred())
			Expect(j0).To(BeNumerically(">", 0))
		})

		It("checks the argument count", func() {
			_, err := v.Evaluate("Negative electrode OCP [V]", 0.1, 0.2)
			Expect(errors.Is(err, ErrArity)).To(BeTrue())

			_, err = v.Evaluate("Separator porosity", 1)
			Expect(errors.Is(err, ErrArity)).To(BeTrue())

			Expect(v.Evaluate("Separator porosity")).To(Equal(0.508))
		})

		It("refuses text values", func() {
			_, err := v.Evaluate(KeyChemistry)
			Expect(errors.Is(err, ErrWrongKind)).To(BeTrue())
		})
	})

	Context("Update", func() {
		It("rejects unknown keys when asked to and changes nothing", func() {
			err := v.Update(map[string]any{
				"Separator porosity": 0.1,
				"Made up [m]":        1.0,
			}, true)
			Expect(errors.Is(err, ErrNotFound)).To(BeTrue())
			Expect(v.Float("Separator porosity")).To(Equal(0.508))
		})

		It("adds new keys otherwise", func() {
			Expect(v.Update(map[string]any{"Made up [m]": 1}, false)).To(Succeed())
			Expect(v.Float("Made up [m]")).To(Equal(1.0))
			Expect(v.Len()).To(Equal(110))
		})

		It("rejects unsupported values", func() {
			err := v.Update(map[string]any{"Separator porosity": []int{1}}, false)
			Expect(errors.Is(err, ErrWrongKind)).To(BeTrue())

			err = v.Update(map[string]any{"New function": func(a, b float64) float64 { return a + b }}, false)
			Expect(errors.Is(err, ErrWrongKind)).To(BeTrue())
		})

		It("takes the kind of an existing function parameter for plain funcs", func() {
			key := "Negative particle diffusivity [m2.s-1]"
			Expect(v.Update(map[string]any{key: func(sto, T float64) float64 { return sto * T }}, true)).To(Succeed())
			Expect(v.KindOf(key)).To(Equal(KindDiffusivity))
			Expect(v.Evaluate(key, 0.5, 300)).To(Equal(150.0))
		})
	})

	It("searches keys without regard to case", func() {
		Expect(v.Search("bruggeman")).To(Equal([]string{
			"Negative electrode Bruggeman coefficient (electrode)",
			"Negative electrode Bruggeman coefficient (electrolyte)",
			"Positive electrode Bruggeman coefficient (electrode)",
			"Positive electrode Bruggeman coefficient (electrolyte)",
			"Separator Bruggeman coefficient (electrolyte)",
		}))
		Expect(v.Search("no such parameter")).To(BeEmpty())
	})

	It("exports functions by name", func() {
		out := v.Export()
		Expect(out).To(HaveLen(v.Len()))
		Expect(out["Negative electrode OCP [V]"]).To(Equal("correlation.GraphiteOCPEcker2015"))
		Expect(out["Electrolyte diffusivity [m2.s-1]"]).To(Equal("correlation.ElectrolyteDiffusivityEcker2015"))
		Expect(out["Exchange-current density for plating [A.m-2]"]).To(Equal("correlation.PlatingExchangeCurrentDensityOKane2020"))
		Expect(out["Separator porosity"]).To(Equal(0.508))

		data, err := yaml.Marshal(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("chemistry: lithium_ion"))
	})
})

var _ = Describe("Registry", func() {
	It("lists the sets", func() {
		Expect(Names()).To(Equal([]string{"Ecker2015", "OKane2022"}))
	})

	It("builds sets by name", func() {
		v, err := Get("okane2022")
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Name()).To(Equal("OKane2022"))

		_, err = Get("Chen2020")
		Expect(errors.Is(err, ErrNotFound)).To(BeTrue())
	})
})

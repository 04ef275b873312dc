package summary_test

import (
	"time"

	"go-timesheet/internal/summary"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

func hours(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var _ = Describe("Summarize", func() {
	var (
		website = uuid.New()
		mobile  = uuid.New()
	)

	Context("with no entries", func() {
		It("returns zero totals and empty groupings", func() {
			s := summary.Summarize(nil)

			Expect(s.TotalHours.IsZero()).To(BeTrue())
			Expect(s.BillableHours.IsZero()).To(BeTrue())
			Expect(s.NonBillableHours.IsZero()).To(BeTrue())
			Expect(s.BillablePercentage.IsZero()).To(BeTrue())
			Expect(s.ByDay).NotTo(BeNil())
			Expect(s.ByDay).To(BeEmpty())
			Expect(s.ByProject).NotTo(BeNil())
			Expect(s.ByProject).To(BeEmpty())
		})
	})

	Context("with one billable and one non-billable day", func() {
		var s summary.Summary

		BeforeEach(func() {
			s = summary.Summarize([]summary.Entry{
				{ProjectID: website, ProjectName: "Website", ClientName: "Acme", Date: day(2024, 6, 3), Hours: hours("8"), IsBillable: true},
				{ProjectID: mobile, ProjectName: "Mobile", ClientName: "Globex", Date: day(2024, 6, 4), Hours: hours("8"), IsBillable: false},
			})
		})

		It("splits billable and non-billable hours", func() {
			Expect(s.TotalHours.Equal(hours("16"))).To(BeTrue())
			Expect(s.BillableHours.Equal(hours("8"))).To(BeTrue())
			Expect(s.NonBillableHours.Equal(hours("8"))).To(BeTrue())
		})

		It("computes the billable percentage", func() {
			Expect(s.BillablePercentage.Equal(hours("50"))).To(BeTrue())
		})

		It("groups by calendar day", func() {
			Expect(s.ByDay).To(HaveLen(2))
			Expect(s.ByDay["2024-06-03"].Equal(hours("8"))).To(BeTrue())
			Expect(s.ByDay["2024-06-04"].Equal(hours("8"))).To(BeTrue())
		})
	})

	Context("with several entries on the same project and day", func() {
		var s summary.Summary

		BeforeEach(func() {
			s = summary.Summarize([]summary.Entry{
				{ProjectID: website, ProjectName: "Website", ClientName: "Acme", Date: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), Hours: hours("1.25"), IsBillable: true},
				{ProjectID: mobile, ProjectName: "Mobile", ClientName: "Globex", Date: day(2024, 6, 3), Hours: hours("0.5"), IsBillable: false},
				{ProjectID: website, ProjectName: "Website (renamed)", ClientName: "Acme Corp", Date: time.Date(2024, 6, 3, 17, 0, 0, 0, time.UTC), Hours: hours("2.75"), IsBillable: true},
			})
		})

		It("accumulates hours on the date component only", func() {
			Expect(s.ByDay).To(HaveLen(1))
			Expect(s.ByDay["2024-06-03"].Equal(hours("4.5"))).To(BeTrue())
		})

		It("keeps first-seen project order and display names", func() {
			Expect(s.ByProject).To(HaveLen(2))
			Expect(s.ByProject[0].ProjectID).To(Equal(website))
			Expect(s.ByProject[0].Name).To(Equal("Website"))
			Expect(s.ByProject[0].ClientName).To(Equal("Acme"))
			Expect(s.ByProject[0].Hours.Equal(hours("4"))).To(BeTrue())
			Expect(s.ByProject[1].ProjectID).To(Equal(mobile))
			Expect(s.ByProject[1].Hours.Equal(hours("0.5"))).To(BeTrue())
		})

		It("rounds the percentage to two places", func() {
			// 4 / 4.5 * 100 = 88.888...
			Expect(s.BillablePercentage.String()).To(Equal("88.89"))
		})
	})

	DescribeTable("total always equals billable plus non-billable",
		func(values []string, billable []bool) {
			entries := make([]summary.Entry, len(values))
			for i, v := range values {
				entries[i] = summary.Entry{ProjectID: website, Date: day(2024, 6, 3), Hours: hours(v), IsBillable: billable[i]}
			}
			s := summary.Summarize(entries)
			Expect(s.TotalHours.Equal(s.BillableHours.Add(s.NonBillableHours))).To(BeTrue())
		},
		Entry("all billable", []string{"0.1", "0.2", "0.3"}, []bool{true, true, true}),
		Entry("none billable", []string{"0.1", "0.2"}, []bool{false, false}),
		Entry("mixed fractions", []string{"0.1", "0.2", "7.33", "1.01"}, []bool{true, false, true, false}),
	)

	It("does not modify its input", func() {
		in := []summary.Entry{{ProjectID: website, Date: day(2024, 6, 3), Hours: hours("3"), IsBillable: true}}
		_ = summary.Summarize(in)
		Expect(in[0].Hours.Equal(hours("3"))).To(BeTrue())
	})
})

package offer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSalaryBreakup(t *testing.T) {
	t.Run(`earning components reconcile to CTC`, func(t *testing.T) {
		for _, ctc := range []int{100000, 350000, 600000, 1200000, 2400001, 7777777} {
			b := BuildSalaryBreakup(ctc)
			sum := b.Basic + b.HRA + b.Conveyance + b.Medical + b.FlexiPay + b.EmployerPF
			require.Equal(t, ctc, sum, "ctc %v", ctc)
		}
	})

	t.Run(`net equals gross minus deductions`, func(t *testing.T) {
		for _, ctc := range []int{600000, 1200000, 2400000} {
			b := BuildSalaryBreakup(ctc)
			require.Equal(t, b.GrossSalary-(b.EmployeePF+b.ProfessionalTax+b.Insurance+b.IncomeTax), b.NetSalary)
			require.Equal(t, ctc-b.EmployerPF, b.GrossSalary)
		}
	})

	t.Run(`breakdown is deterministic`, func(t *testing.T) {
		require.Equal(t, BuildSalaryBreakup(900000), BuildSalaryBreakup(900000))
	})

	t.Run(`no tax below the first slab`, func(t *testing.T) {
		b := BuildSalaryBreakup(450000)
		require.Equal(t, 0, b.IncomeTax)
	})

	t.Run(`non-positive ctc yields an empty breakdown`, func(t *testing.T) {
		b := BuildSalaryBreakup(0)
		require.Equal(t, 0, b.Basic)
		require.Equal(t, 0, b.NetSalary)
	})

	t.Run(`low ctc drops fixed allowances instead of going negative`, func(t *testing.T) {
		b := BuildSalaryBreakup(50000)
		require.GreaterOrEqual(t, b.FlexiPay, 0)
		require.Equal(t, 50000, b.Basic+b.HRA+b.Conveyance+b.Medical+b.FlexiPay+b.EmployerPF)
	})
}

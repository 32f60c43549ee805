package offer

// SalaryBreakup is the full annual decomposition of a target CTC. Earning
// components sum exactly to the CTC; flexi pay absorbs the remainder so the
// reconciliation holds for any positive input.
type SalaryBreakup struct {
	AnnualCTC       int `json:"annual_ctc"`
	Basic           int `json:"basic"`
	HRA             int `json:"hra"`
	Conveyance      int `json:"conveyance"`
	Medical         int `json:"medical"`
	FlexiPay        int `json:"flexi_pay"`
	EmployerPF      int `json:"employer_pf"`
	EmployeePF      int `json:"employee_pf"`
	ProfessionalTax int `json:"professional_tax"`
	Insurance       int `json:"insurance"`
	IncomeTax       int `json:"income_tax"`
	GrossSalary     int `json:"gross_salary"`
	NetSalary       int `json:"net_salary"`
}

const (
	conveyanceAnnual      = 19200
	medicalAnnual         = 15000
	professionalTaxAnnual = 2400
	insuranceAnnual       = 6000

	taxSlab1 = 500000
	taxSlab2 = 1000000
)

// BuildSalaryBreakup is pure and is evaluated once at offer release; the
// stored letter is an immutable snapshot.
func BuildSalaryBreakup(annualCTC int) SalaryBreakup {
	b := SalaryBreakup{AnnualCTC: annualCTC}
	if annualCTC <= 0 {
		return b
	}
	b.Basic = annualCTC * 40 / 100
	b.HRA = b.Basic * 40 / 100
	b.EmployerPF = b.Basic * 12 / 100
	b.Conveyance = conveyanceAnnual
	b.Medical = medicalAnnual
	b.FlexiPay = annualCTC - b.Basic - b.HRA - b.Conveyance - b.Medical - b.EmployerPF
	if b.FlexiPay < 0 {
		// low CTC: drop the fixed allowances so the remainder stays positive
		b.Conveyance = 0
		b.Medical = 0
		b.FlexiPay = annualCTC - b.Basic - b.HRA - b.EmployerPF
	}

	b.EmployeePF = b.Basic * 12 / 100
	b.ProfessionalTax = professionalTaxAnnual
	b.Insurance = insuranceAnnual
	b.IncomeTax = incomeTax(annualCTC)

	b.GrossSalary = b.Basic + b.HRA + b.Conveyance + b.Medical + b.FlexiPay
	b.NetSalary = b.GrossSalary - b.EmployeePF - b.ProfessionalTax - b.Insurance - b.IncomeTax
	return b
}

func incomeTax(annualCTC int) int {
	switch {
	case annualCTC <= taxSlab1:
		return 0
	case annualCTC <= taxSlab2:
		return (annualCTC - taxSlab1) * 5 / 100
	default:
		return (taxSlab2-taxSlab1)*5/100 + (annualCTC-taxSlab2)*10/100
	}
}

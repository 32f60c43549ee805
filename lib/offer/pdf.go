package offer

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	dbmodels "ats-backend/models/db"
)

// GenerateOfferPDF renders the offer letter with the persisted salary
// snapshot; it never reads live data.
func GenerateOfferPDF(letter dbmodels.OfferLetter, candidateName, jobTitle string, company *dbmodels.CompanyProfile) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateOfferPDF panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	companyName := ""
	signatory := ""
	if company != nil {
		companyName = company.Name
		signatory = company.Signatory
		pdf.CellFormat(0, 10, company.Name, "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, company.Address, "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 6, company.Contact, "", 1, "C", false, 0, "")
	}
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Offer of Employment", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, fmt.Sprintf("Dear %v,", candidateName), "", "L", false)
	pdf.Ln(2)
	pdf.MultiCell(0, 6, fmt.Sprintf(
		"We are pleased to offer you the position of %v at %v. Your expected date of joining is %v.",
		letter.Designation, companyName, letter.JoiningDate.Format("02 Jan 2006")), "", "L", false)
	if jobTitle != "" && jobTitle != letter.Designation {
		pdf.MultiCell(0, 6, fmt.Sprintf("This offer is issued against the %v opening.", jobTitle), "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, "Annual Compensation", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	rows := []struct {
		label string
		value int
	}{
		{"Basic", letter.Basic},
		{"House Rent Allowance", letter.HRA},
		{"Conveyance Allowance", letter.Conveyance},
		{"Medical Allowance", letter.Medical},
		{"Flexi Pay", letter.FlexiPay},
		{"Employer PF Contribution", letter.EmployerPF},
		{"Total CTC", letter.AnnualCTC},
		{"Gross Salary", letter.GrossSalary},
		{"Employee PF", letter.EmployeePF},
		{"Professional Tax", letter.ProfessionalTax},
		{"Insurance", letter.Insurance},
		{"Income Tax (est.)", letter.IncomeTax},
		{"Net Salary", letter.NetSalary},
	}
	for _, row := range rows {
		pdf.CellFormat(110, 7, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, fmt.Sprintf("%v", row.value), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(8)
	pdf.MultiCell(0, 6, "Please confirm your acceptance through the candidate portal. This offer is valid for 15 days from the date of issue.", "", "L", false)
	pdf.Ln(10)
	pdf.CellFormat(0, 6, "Sincerely,", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, signatory, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, companyName, "", 1, "L", false, 0, "")

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

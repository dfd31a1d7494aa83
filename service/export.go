package service

import (
	"encoding/csv"
	"fmt"
	"io"

	"expensebook/models"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"ID", "标题", "金额", "类型", "日期"}

func typeLabel(t models.ExpenseType) string {
	if t == models.TypeIncome {
		return "收入"
	}
	return "支出"
}

// ExportCSV 写出 CSV，带 BOM 以支持 Excel 中文显示
func ExportCSV(w io.Writer, list []models.Expense) error {
	if _, err := io.WriteString(w, "\xEF\xBB\xBF"); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeaders); err != nil {
		return err
	}
	for _, e := range list {
		row := []string{
			fmt.Sprintf("%d", e.ID),
			e.Title,
			fmt.Sprintf("%.2f", e.Amount),
			typeLabel(e.Type),
			e.CreatedAt,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportExcel 写出 xlsx，最后一行为收支汇总
func ExportExcel(w io.Writer, list []models.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "收支记录"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return err
	}
	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return err
	}
	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return err
	}

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "C", 15)
	f.SetColWidth(sheetName, "D", "D", 10)
	f.SetColWidth(sheetName, "E", "E", 15)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, e := range list {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), e.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), e.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), typeLabel(e.Type))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), e.CreatedAt)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), dataStyle)
	}

	sum := Summarize(list)
	summaryRow := len(list) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "结余")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), sum.Balance.InexactFloat64())
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("共 %d 条记录", len(list)))
	f.MergeCell(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("E%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("E%d", summaryRow), summaryStyle)

	return f.Write(w)
}

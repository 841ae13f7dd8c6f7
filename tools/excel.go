package tools

import (
	"fmt"
	"reflect"

	"github.com/xuri/excelize/v2"
)

type excelColumn struct {
	index  []int
	header string
}

// excelColumns 收集结构体导出字段，表头取 excel 标签，"-" 表示跳过
func excelColumns(t reflect.Type, parent []int) []excelColumn {
	var cols []excelColumn
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		idx := append(append([]int(nil), parent...), i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			cols = append(cols, excelColumns(sf.Type, idx)...)
			continue
		}
		tag := sf.Tag.Get("excel")
		if tag == "" || tag == "-" {
			continue
		}
		cols = append(cols, excelColumn{index: idx, header: tag})
	}
	return cols
}

// WriteSheet 将结构体切片写入指定工作表，首行为表头
func WriteSheet(f *excelize.File, sheet string, data any) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("data %T 不是切片", data)
	}

	elemType := v.Type().Elem()
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("data %T 不是结构体切片", data)
	}

	if idx, _ := f.GetSheetIndex(sheet); idx == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}

	cols := excelColumns(elemType, nil)
	header := make([]any, len(cols))
	for i, col := range cols {
		header[i] = col.header
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	line := 2
	for row := 0; row < v.Len(); row++ {
		elem := v.Index(row)
		if elem.Kind() == reflect.Ptr {
			if elem.IsNil() {
				continue
			}
			elem = elem.Elem()
		}

		values := make([]any, len(cols))
		for i, col := range cols {
			values[i] = cellValue(elem.FieldByIndex(col.index))
		}
		cell, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		line++
	}
	return nil
}

func cellValue(fv reflect.Value) any {
	if fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			return ""
		}
		fv = fv.Elem()
	}
	return fv.Interface()
}

// NewWorkbook 创建工作簿，sheets 依次写入，默认的 Sheet1 被第一个工作表替换
func NewWorkbook(sheets ...Sheet) (*excelize.File, error) {
	f := excelize.NewFile()
	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				return nil, err
			}
		}
		if err := WriteSheet(f, s.Name, s.Rows); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return f, nil
}

type Sheet struct {
	Name string
	Rows any
}

// Package report 提供 mdkloc 的输出能力。
// 当前实现支持 table 控制台格式和 JSON 格式（含文件导出）。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"mdkloc/internal/model"
)

// PrintTable 使用表格展示扫描结果。
// showRoles 为真时追加 Mainline/Test 两个角色小结。
func PrintTable(writer io.Writer, result model.ScanResult, showRoles bool) error {
	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "SCANNED PATH\t%s\n\n", result.ScannedPath); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(tw, "FILE\tLANGUAGE\tROLE\tTOTAL\tCODE\tCOMMENT\tBLANK"); err != nil {
		return err
	}
	for _, item := range result.Files {
		if _, err := fmt.Fprintf(
			tw,
			"%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			item.Path,
			item.Language,
			item.Role,
			item.Metrics.Total,
			item.Metrics.Code,
			item.Metrics.Comment,
			item.Metrics.Blank,
		); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(tw, "\nLANGUAGE\tFILES\tTOTAL\tCODE\tCOMMENT\tBLANK"); err != nil {
		return err
	}
	for _, item := range result.Languages {
		if _, err := fmt.Fprintf(
			tw,
			"%s\t%d\t%d\t%d\t%d\t%d\n",
			item.Language,
			item.Files,
			item.Metrics.Total,
			item.Metrics.Code,
			item.Metrics.Comment,
			item.Metrics.Blank,
		); err != nil {
			return err
		}
	}

	if showRoles {
		if err := printRoleSection(tw, result, model.RoleMainline); err != nil {
			return err
		}
		if err := printRoleSection(tw, result, model.RoleTest); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(
		tw,
		"\nTOTAL\t%d\t%d\t%d\t%d\t%d\n",
		result.Total.Files,
		result.Total.Total,
		result.Total.Code,
		result.Total.Comment,
		result.Total.Blank,
	); err != nil {
		return err
	}

	if result.Total.Total > 0 {
		if _, err := fmt.Fprintf(
			tw,
			"\nCode %.1f%%\tComment %.1f%%\tBlank %.1f%%\n",
			percentage(result.Total.Code, result.Total.Total),
			percentage(result.Total.Comment, result.Total.Total),
			percentage(result.Total.Blank, result.Total.Total),
		); err != nil {
			return err
		}
	}

	if len(result.Errors) > 0 {
		if _, err := fmt.Fprintf(tw, "\nFAILED FILES\t%d\n", len(result.Errors)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(tw, "ERROR FILE\tMESSAGE"); err != nil {
			return err
		}
		for _, item := range result.Errors {
			if _, err := fmt.Fprintf(tw, "%s\t%s\n", item.Path, item.Error); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}

// printRoleSection 输出某个角色的按语言小结，角色无数据时跳过。
func printRoleSection(tw *tabwriter.Writer, result model.ScanResult, role model.Role) error {
	header := false
	for _, item := range result.Languages {
		entry, ok := item.Roles[role.String()]
		if !ok || entry.Files == 0 {
			continue
		}
		if !header {
			if _, err := fmt.Fprintf(tw, "\nTotals by language (%s):\n", role); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(tw, "LANGUAGE\tFILES\tTOTAL\tCODE\tCOMMENT\tBLANK"); err != nil {
				return err
			}
			header = true
		}
		if _, err := fmt.Fprintf(
			tw,
			"%s\t%d\t%d\t%d\t%d\t%d\n",
			item.Language,
			entry.Files,
			entry.Metrics.Total,
			entry.Metrics.Code,
			entry.Metrics.Comment,
			entry.Metrics.Blank,
		); err != nil {
			return err
		}
	}
	return nil
}

// percentage 计算占比，分母为零时返回 0。
func percentage(part int64, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) * 100 / float64(whole)
}

// PrintJSON 把扫描结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, result model.ScanResult) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteJSONFile 将 JSON 结果导出到指定路径。
// 如果目录不存在会自动创建。
func WriteJSONFile(path string, result model.ScanResult) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, content, 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}

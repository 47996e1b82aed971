package counter

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"mdkloc/internal/languages"
	"mdkloc/internal/model"
)

// normalizeLine 去除行尾换行符并做有损解码。
// 非法 UTF-8 序列替换为 U+FFFD，解码永远不会失败。
// 该函数适配 Windows 的 \r\n 与 Unix 的 \n。
func normalizeLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return strings.ToValidUTF8(line, "�")
}

// applyClass 根据分类结果更新统计值。
// 每次调用对应处理完一整行，Total 固定 +1，
// 且 Code/Comment/Blank 恰有一个 +1。
func applyClass(metrics *model.LineMetrics, class Class) {
	metrics.Total++

	switch class {
	case ClassCode:
		metrics.Code++
	case ClassComment:
		metrics.Comment++
	default:
		metrics.Blank++
	}
}

// AnalyzeReader 对输入流逐行执行“适配器 → 引擎”并累计统计。
//
// 这里使用 ReadString('\n') 做“按行流式”读取：
// 1) 不会把整个文件一次性载入内存；
// 2) 没有换行符的最后一行同样作为物理行计入。
// 单个 State 贯穿整个文件，函数返回后即被丢弃。
func AnalyzeReader(reader io.Reader, profile *languages.Profile) (model.LineMetrics, error) {
	var metrics model.LineMetrics
	state := State{}
	firstLine := true

	bufferedReader := bufio.NewReader(reader)
	for {
		line, err := bufferedReader.ReadString('\n')
		// EOF 且没有任何剩余字符时，说明已经没有可处理行，直接退出。
		if errors.Is(err, io.EOF) && len(line) == 0 {
			break
		}
		// 非 EOF 错误需要立即返回，避免输出不完整统计结果。
		if err != nil && !errors.Is(err, io.EOF) {
			return metrics, err
		}

		currentLine := normalizeLine(line)

		class, authoritative := FixedFormClass(currentLine, profile)
		if !authoritative {
			class, state = Classify(state, currentLine, profile, firstLine)
		}
		applyClass(&metrics, class)
		firstLine = false

		// EOF 但 line 非空代表“最后一行没有换行符”，这行已经处理完，随后退出。
		if errors.Is(err, io.EOF) {
			break
		}
	}

	// 文件结束时仍未闭合的块注释不是错误，剩余行已按 Comment 计入。
	return metrics, nil
}

// AnalyzeFile 打开并分析单个文件。
// 读取失败（权限、文件消失）作为该文件的错误返回，
// 由调用方计入失败清单，不会中断整体扫描。
func AnalyzeFile(path string, profile *languages.Profile) (model.LineMetrics, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.LineMetrics{}, err
	}
	defer file.Close()

	return AnalyzeReader(file, profile)
}

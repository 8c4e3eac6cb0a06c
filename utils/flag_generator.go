package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateFlag 生成随机 Flag，用于管理员建题时未指定 Flag 的场景
func GenerateFlag() string {
	part1 := strings.Replace(uuid.New().String(), "-", "", -1)[:12]
	part2 := strings.Replace(uuid.New().String(), "-", "", -1)[:12]
	return fmt.Sprintf("THC{%s-%s}", part1, part2)
}

package hwmon

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/markusressel/fuzzyfan/internal/configuration"
)

const DefaultBasePath = "/sys/class/hwmon"

var (
	hwmonDirRegex  = regexp.MustCompile(`^hwmon\d+$`)
	tempInputRegex = regexp.MustCompile(`^temp(\d+)_input$`)
)

type Chip struct {
	Name string
	// Platform identifies the chip independent of the (unstable) hwmon index
	Platform string
	Path     string

	TempInputs map[int]*TempInput
}

type TempInput struct {
	Index int
	Label string
	Input string
}

// GetChips returns all hwmon chips below basePath that provide at least one temperature input
func GetChips(basePath string) ([]*Chip, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, err
	}

	var list []*Chip
	for _, entry := range entries {
		if !hwmonDirRegex.MatchString(entry.Name()) {
			continue
		}

		devicePath := filepath.Join(basePath, entry.Name())
		name := getDeviceName(devicePath)
		platform := name
		if entry.Type()&os.ModeSymlink != 0 {
			if resolvedPath, err := filepath.EvalSymlinks(devicePath); err == nil {
				platform = computePlatform(name, resolvedPath)
			}
		}

		chip := &Chip{
			Name:       name,
			Platform:   platform,
			Path:       devicePath,
			TempInputs: getTempInputs(devicePath),
		}
		if len(chip.TempInputs) <= 0 {
			continue
		}
		list = append(list, chip)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Platform < list[j].Platform
	})
	return list, nil
}

// ResolveTempInput finds the temp*_input file selected by the given config
func ResolveTempInput(chips []*Chip, config configuration.HwMonSensorConfig) (string, error) {
	platformRegex, err := regexp.Compile("(?i)" + config.Platform)
	if err != nil {
		return "", err
	}
	for _, chip := range chips {
		if !platformRegex.MatchString(chip.Platform) {
			continue
		}
		tempInput, ok := chip.TempInputs[config.Index]
		if !ok {
			return "", fmt.Errorf("hwmon chip %s has no temperature input with index %d", chip.Platform, config.Index)
		}
		return tempInput.Input, nil
	}
	return "", fmt.Errorf("couldn't find hwmon device with platform '%s'", config.Platform)
}

func getTempInputs(devicePath string) map[int]*TempInput {
	result := map[int]*TempInput{}

	entries, err := os.ReadDir(devicePath)
	if err != nil {
		return result
	}
	for _, entry := range entries {
		match := tempInputRegex.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		index, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		result[index] = &TempInput{
			Index: index,
			Label: getLabel(devicePath, entry.Name()),
			Input: filepath.Join(devicePath, entry.Name()),
		}
	}
	return result
}

// getDeviceName read the name of a device
func getDeviceName(devicePath string) string {
	content, _ := os.ReadFile(filepath.Join(devicePath, "name"))
	name := strings.TrimSpace(string(content))
	if len(name) <= 0 {
		_, name = filepath.Split(devicePath)
	}
	return name
}

// getLabel read the label of a in/output of a device
func getLabel(devicePath string, input string) string {
	labelPath := filepath.Join(devicePath, strings.TrimSuffix(input, "input")+"label")

	content, _ := os.ReadFile(labelPath)
	label := strings.TrimSpace(string(content))
	if len(label) <= 0 {
		label = strings.TrimSuffix(input, "_input")
	}
	return label
}

// computePlatform combines the chip name with the device it belongs to,
// f.ex. "k10temp-0000:00:18.3" for .../0000:00:18.3/hwmon/hwmon2
func computePlatform(name string, resolvedPath string) string {
	parent := filepath.Dir(resolvedPath)
	if filepath.Base(parent) != "hwmon" {
		return name
	}
	device := filepath.Base(filepath.Dir(parent))
	return fmt.Sprintf("%s-%s", name, device)
}

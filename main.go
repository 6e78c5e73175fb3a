package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"bdd2yolo/bdd"
	"bdd2yolo/convert"
	"bdd2yolo/logger"
)

type configStruct struct {
	BaseDir        string `yaml:"baseDir"`
	OutputBaseDir  string `yaml:"outputBaseDir"`
	TrainImagesDir string `yaml:"trainImagesDir"`
	ValImagesDir   string `yaml:"valImagesDir"`
	DevLogging     bool   `yaml:"devLogging"`
}

// processSplit runs the full pass for one split: load frames, build the
// split's own category mapping, convert, report.
func processSplit(cfg configStruct, split, imageSrcDir string) (*convert.Result, *convert.Mapping, error) {
	frames, err := bdd.LoadFrames(bdd.LabelPath(cfg.BaseDir, split))
	if err != nil {
		return nil, nil, err
	}
	mapping := convert.BuildMapping(frames)
	convert.ReportMapping(split, mapping)

	fmt.Printf("\nBefore processing the %s split:\n", split)
	fmt.Printf("Entries in the %s label file: %d\n", split, len(frames))

	res, err := convert.Run(frames, mapping, convert.Options{
		Split:       split,
		LabelDir:    filepath.Join(cfg.OutputBaseDir, "labels", split),
		ImageSrcDir: imageSrcDir,
		ImageDstDir: filepath.Join(cfg.OutputBaseDir, "images", split),
	})
	if err != nil {
		return nil, nil, err
	}
	convert.Report(split, res, mapping)
	return res, mapping, nil
}

func printSplitSummary(title string, res *convert.Result) {
	fmt.Printf("%s dataset:\n", title)
	fmt.Printf("  JSON entries: %d\n", res.Entries)
	fmt.Printf("  Processed images: %d\n", res.Processed)
	fmt.Printf("  Missing images: %d\n", res.Missing)
}

func main() {
	configData, err := os.ReadFile("config.yaml")
	if err != nil {
		fmt.Println("Failed to read config file:", err)
		os.Exit(1)
	}
	cfg := configStruct{}
	if err := yaml.Unmarshal(configData, &cfg); err != nil {
		fmt.Println("Failed to parse config file:", err)
		os.Exit(1)
	}

	if cfg.DevLogging {
		err = logger.InitDevelopment()
	} else {
		err = logger.InitProduction()
	}
	if err != nil {
		fmt.Println("Failed to init logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	runID := uuid.NewString()
	logger.S().Infow("starting conversion run",
		"run_id", runID,
		"base_dir", cfg.BaseDir,
		"output_dir", cfg.OutputBaseDir,
	)

	fmt.Println(strings.Repeat("#", 64))
	fmt.Println("BDD100K -> YOLO polygon label conversion")
	fmt.Println("    Run ID:", runID)
	fmt.Println("  Base dir:", cfg.BaseDir)
	fmt.Println("Output dir:", cfg.OutputBaseDir)
	fmt.Println(strings.Repeat("#", 64))

	trainRes, trainMapping, err := processSplit(cfg, "train", cfg.TrainImagesDir)
	if err != nil {
		logger.S().Fatalf("train split failed: %v", err)
	}
	valRes, _, err := processSplit(cfg, "val", cfg.ValImagesDir)
	if err != nil {
		logger.S().Fatalf("val split failed: %v", err)
	}

	fmt.Println("\nSummary:")
	printSplitSummary("Train", trainRes)
	fmt.Println()
	printSplitSummary("Validation", valRes)

	// The manifest uses the train split's mapping for both splits;
	// val-only categories never reach data.yaml.
	fmt.Println("\nAll categories and total instances in the dataset:")
	for _, name := range trainMapping.Names() {
		train := trainRes.Instances[name]
		val := valRes.Instances[name]
		fmt.Printf("  %s: %d instances (Train: %d, Val: %d)\n", name, train+val, train, val)
	}

	trainImages := filepath.Join(cfg.OutputBaseDir, "images", "train")
	valImages := filepath.Join(cfg.OutputBaseDir, "images", "val")
	if err := convert.WriteManifest(cfg.OutputBaseDir, trainImages, valImages, trainMapping); err != nil {
		logger.S().Fatalf("write manifest: %v", err)
	}

	logger.S().Infow("conversion run finished",
		"run_id", runID,
		"train_processed", trainRes.Processed,
		"train_missing", trainRes.Missing,
		"val_processed", valRes.Processed,
		"val_missing", valRes.Missing,
	)
	fmt.Println("\nConversion complete. Images copied and data.yaml generated.")
}

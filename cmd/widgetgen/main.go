package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"gopkg.in/yaml.v3"

	"github.com/iyulab/u-widgets-sub002/pkg/infer"
	"github.com/iyulab/u-widgets-sub002/pkg/model"
	"github.com/iyulab/u-widgets-sub002/pkg/normalize"
	"github.com/iyulab/u-widgets-sub002/pkg/validate"
)

func main() {
	dataPath := flag.String("data", "", "data file (JSON or YAML) to infer a spec from")
	specPath := flag.String("spec", "", "spec file (JSON or YAML) to validate and normalize")
	output := flag.String("output", "", "output file (stdout if empty)")
	encoding := flag.String("format", "yaml", "output encoding: yaml or json")
	interactive := flag.Bool("interactive", false, "pick among ranked mapping candidates")
	flag.Parse()

	switch {
	case *specPath != "":
		runValidate(*specPath, *output, *encoding)
	case *dataPath != "":
		runInfer(*dataPath, *output, *encoding, *interactive)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runValidate(path, output, encoding string) {
	doc := loadDocument(path)

	result := validate.Spec(doc)
	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", warning.Path, warning.Message)
	}
	if !result.Valid {
		for _, issue := range result.Errors {
			fmt.Fprintf(os.Stderr, "error: %s: %s\n", issue.Path, issue.Message)
		}
		os.Exit(1)
	}

	spec, err := model.Decode(doc)
	if err != nil {
		log.Fatalf("decode spec: %v", err)
	}
	writeSpec(normalize.Spec(spec), output, encoding)
}

func runInfer(path, output, encoding string, interactive bool) {
	data := loadDocument(path)

	candidates := infer.SuggestMapping(data)
	chosen := candidates[0]
	if interactive && len(candidates) > 1 {
		chosen = pickCandidate(candidates)
	}
	writeSpec(infer.SpecFrom(data, chosen), output, encoding)
}

func pickCandidate(candidates []infer.Candidate) infer.Candidate {
	options := make([]string, len(candidates))
	for i, candidate := range candidates {
		options[i] = fmt.Sprintf("%s (confidence: %s)", candidate.Widget, candidate.Confidence)
	}

	var choice string
	prompt := &survey.Select{
		Message: "Widget to generate:",
		Options: options,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		log.Fatalf("prompt: %v", err)
	}
	for i, option := range options {
		if option == choice {
			return candidates[i]
		}
	}
	return candidates[0]
}

func loadDocument(path string) any {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		log.Fatalf("parse %s: %v", path, err)
	}
	return doc
}

func writeSpec(spec model.WidgetSpec, output, encoding string) {
	var payload []byte
	var err error
	switch encoding {
	case "json":
		payload, err = json.MarshalIndent(spec, "", "  ")
		payload = append(payload, '\n')
	default:
		payload, err = yaml.Marshal(spec)
	}
	if err != nil {
		log.Fatalf("encode spec: %v", err)
	}

	if output == "" {
		fmt.Print(string(payload))
		return
	}
	if err := os.WriteFile(output, payload, 0o644); err != nil {
		log.Fatalf("write %s: %v", output, err)
	}
	fmt.Printf("Spec written to %s\n", output)
}

// Command targetdump is a read-only inspector for compiled target
// archives: it prints the capability requirements a device must satisfy
// to run the target, and the memory-planner output for a requested keyval
// count. It never dispatches a sort and never generates sample data. Unless
// -probe-device is passed it never opens a Vulkan device either and only
// decodes what is already on disk.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/darkace1998/vkradixsort/archive"
	"github.com/darkace1998/vkradixsort/capability"
	"github.com/darkace1998/vkradixsort/engine"
)

func main() {
	count := flag.Uint64("count", 0, "keyval count to plan memory requirements for")
	asJSON := flag.Bool("json", false, "emit JSON instead of plain text")
	probe := flag.Bool("probe-device", false, "also open a real Vulkan device and check extension support")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: targetdump [-count N] [-json] [-probe-device] <target-archive>")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), uint32(*count), *asJSON, *probe); err != nil {
		fmt.Fprintln(os.Stderr, "targetdump:", err)
		os.Exit(1)
	}
}

func run(path string, count uint32, asJSON bool, probe bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	a, err := archive.Open(data)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}

	entry0, err := a.Entry(0)
	if err != nil {
		return fmt.Errorf("reading target header: %w", err)
	}

	header, err := archive.DecodeHeader(entry0)
	if err != nil {
		return fmt.Errorf("decoding target header: %w", err)
	}

	req := &capability.Requirements{}
	if _, err := capability.GetRequirements(header, req); err != nil {
		return fmt.Errorf("sizing capability requirements: %w", err)
	}
	req.ExtNames = make([]string, req.ExtNameCount)
	req.PDF = &capability.PDF10{}
	req.PDF11 = &capability.PDF11{}
	req.PDF12 = &capability.PDF12{}
	if _, err := capability.GetRequirements(header, req); err != nil {
		return fmt.Errorf("filling capability requirements: %w", err)
	}

	mem := engine.PlanMemory(header.Config, count)

	if asJSON {
		if err := printJSON(path, a, header, req, mem); err != nil {
			return err
		}
	} else {
		printText(path, a, header, req, mem, count)
	}

	if probe {
		return probeDevice(req)
	}
	return nil
}

func printText(path string, a *archive.Archive, header *archive.Header, req *capability.Requirements, mem engine.MemoryRequirements, count uint32) {
	fmt.Printf("target:        %s\n", path)
	fmt.Printf("entries:       %d\n", a.Count())
	fmt.Printf("keyval_dwords: %d (%d bytes)\n", header.Config.KeyvalDwords, header.Config.KeyvalBytes())
	fmt.Printf("indirect:      %v\n", header.Config.HasIndirect)
	fmt.Printf("extensions:    %s\n", strings.Join(req.ExtNames, ", "))
	fmt.Printf("features_1.0:  %+v\n", *req.PDF)
	fmt.Printf("features_1.1:  %+v\n", *req.PDF11)
	fmt.Printf("features_1.2:  %+v\n", *req.PDF12)
	fmt.Println()
	fmt.Printf("memory plan for count=%d:\n", count)
	fmt.Printf("  keyvals_size:      %d (align %d)\n", mem.KeyvalsSize, mem.KeyvalsAlignment)
	fmt.Printf("  internal_size:     %d (align %d)\n", mem.InternalSize, mem.InternalAlignment)
	fmt.Printf("  indirect_size:     %d (align %d)\n", mem.IndirectSize, mem.IndirectAlignment)
}

type dumpOutput struct {
	Target     string                    `json:"target"`
	Entries    int                       `json:"entries"`
	Config     archive.Config            `json:"config"`
	Extensions []string                  `json:"extensions"`
	Features10 *capability.PDF10         `json:"features_1_0"`
	Features11 *capability.PDF11         `json:"features_1_1"`
	Features12 *capability.PDF12         `json:"features_1_2"`
	MemoryPlan engine.MemoryRequirements `json:"memory_plan"`
}

func printJSON(path string, a *archive.Archive, header *archive.Header, req *capability.Requirements, mem engine.MemoryRequirements) error {
	out := dumpOutput{
		Target:     path,
		Entries:    a.Count(),
		Config:     header.Config,
		Extensions: req.ExtNames,
		Features10: req.PDF,
		Features11: req.PDF11,
		Features12: req.PDF12,
		MemoryPlan: mem,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

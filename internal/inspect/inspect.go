package inspect

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
)

const labelPrefix = "promptflags."

// TemplateInfo is what a template image says about itself through labels.
type TemplateInfo struct {
	ManifestPath string // promptflags.manifest
	Tool         string // promptflags.tool
	Args         []string
}

// ImageAPI is the slice of the Docker client used to read image labels.
type ImageAPI interface {
	ImageInspectWithRaw(ctx context.Context, imageID string) (types.ImageInspect, []byte, error)
}

func ParseLabels(labels map[string]string) *TemplateInfo {
	info := &TemplateInfo{
		Args: make([]string, 0),
	}

	type indexedEntry struct {
		Index int
		Key   string
		Value string
	}

	args := make([]indexedEntry, 0)

	for key, value := range labels {
		if !strings.HasPrefix(key, labelPrefix) {
			continue
		}

		switch {
		case key == "promptflags.manifest":
			info.ManifestPath = value
		case key == "promptflags.tool":
			info.Tool = value
		case strings.HasPrefix(key, "promptflags.arg."):
			index := maxInt()
			suffix := strings.TrimPrefix(key, "promptflags.arg.")
			if parsed, err := strconv.Atoi(suffix); err == nil {
				index = parsed
			}
			args = append(args, indexedEntry{
				Index: index,
				Key:   key,
				Value: value,
			})
		}
	}

	sort.Slice(args, func(i int, j int) bool {
		if args[i].Index == args[j].Index {
			return args[i].Key < args[j].Key
		}
		return args[i].Index < args[j].Index
	})

	for _, arg := range args {
		info.Args = append(info.Args, arg.Value)
	}

	return info
}

func Inspect(ctx context.Context, imageRef string) (*TemplateInfo, error) {
	docker, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}
	defer docker.Close()

	return InspectWith(ctx, docker, imageRef)
}

func InspectWith(ctx context.Context, api ImageAPI, imageRef string) (*TemplateInfo, error) {
	inspect, _, err := api.ImageInspectWithRaw(ctx, imageRef)
	if err != nil {
		return nil, fmt.Errorf("inspect image %q: %w", imageRef, err)
	}

	labels := map[string]string{}
	if inspect.Config != nil && inspect.Config.Labels != nil {
		labels = inspect.Config.Labels
	}

	return ParseLabels(labels), nil
}

func maxInt() int {
	return int(^uint(0) >> 1)
}

package loader

import (
	"fmt"

	"github.com/Carmen-Shannon/keyframe-go/engine/animatable"
	"github.com/Carmen-Shannon/keyframe-go/engine/clip"
	"github.com/Carmen-Shannon/keyframe-go/engine/track"
)

// gltfClipExtractorImpl is the implementation of the gltfClipExtractor interface.
type gltfClipExtractorImpl struct {
	parser gltfParser
}

// gltfClipExtractor defines the interface for extracting animation clips from
// a parsed glTF document. It converts glTF animation definitions into engine
// clips: each glTF channel becomes a clip channel targeting the node's name,
// with the sampler's timestamps and interpolation mode carried alongside the
// keyframe track.
type gltfClipExtractor interface {
	// ExtractClip extracts a single animation by index.
	//
	// Parameters:
	//   - animIndex: the index of the animation in the document
	//
	// Returns:
	//   - clip.Clip: the extracted clip
	//   - error: error if extraction fails
	ExtractClip(animIndex int) (clip.Clip, error)

	// ExtractAllClips extracts every animation from the document.
	//
	// Returns:
	//   - []clip.Clip: all extracted clips
	//   - error: error if extraction fails
	ExtractAllClips() ([]clip.Clip, error)
}

var _ gltfClipExtractor = &gltfClipExtractorImpl{}

// newGLTFClipExtractor creates a new clip extractor for a parsed document.
//
// Parameters:
//   - parser: the parser containing a loaded document
//
// Returns:
//   - gltfClipExtractor: the clip extractor
func newGLTFClipExtractor(parser gltfParser) gltfClipExtractor {
	return &gltfClipExtractorImpl{parser: parser}
}

func (e *gltfClipExtractorImpl) ExtractClip(animIndex int) (clip.Clip, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, fmt.Errorf("no document loaded")
	}
	if animIndex < 0 || animIndex >= len(doc.Animations) {
		return nil, fmt.Errorf("animation index %d out of range", animIndex)
	}

	anim := &doc.Animations[animIndex]

	var channels []clip.Channel
	var maxTime float32

	for i := range anim.Channels {
		ch := &anim.Channels[i]

		// Channels without a target node animate nothing per the glTF spec.
		if ch.Target.Node == nil {
			continue
		}
		nodeIndex := *ch.Target.Node
		if nodeIndex < 0 || nodeIndex >= len(doc.Nodes) {
			return nil, fmt.Errorf("animation %q channel %d: node index %d out of range", anim.Name, i, nodeIndex)
		}

		if ch.Sampler < 0 || ch.Sampler >= len(anim.Samplers) {
			return nil, fmt.Errorf("animation %q channel %d: invalid sampler index %d", anim.Name, i, ch.Sampler)
		}
		sampler := &anim.Samplers[ch.Sampler]

		timestamps, err := e.parser.ReadScalarAccessor(sampler.Input)
		if err != nil {
			return nil, fmt.Errorf("animation %q channel %d: failed to read timestamps: %w", anim.Name, i, err)
		}
		if len(timestamps) > 0 {
			if t := timestamps[len(timestamps)-1]; t > maxTime {
				maxTime = t
			}
		}

		interpolation, options := samplerInterpolation(sampler.Interpolation)

		var tr track.Track
		switch ch.Target.Path {
		case gltfAnimPathTranslation:
			values, err := e.parser.ReadVec3Accessor(sampler.Output)
			if err != nil {
				return nil, fmt.Errorf("animation %q channel %d: failed to read translation values: %w", anim.Name, i, err)
			}
			tr = track.NewTranslation(values, options...)

		case gltfAnimPathRotation:
			values, err := e.parser.ReadQuatAccessor(sampler.Output)
			if err != nil {
				return nil, fmt.Errorf("animation %q channel %d: failed to read rotation values: %w", anim.Name, i, err)
			}
			tr = track.NewRotation(values, options...)

		case gltfAnimPathScale:
			values, err := e.parser.ReadVec3Accessor(sampler.Output)
			if err != nil {
				return nil, fmt.Errorf("animation %q channel %d: failed to read scale values: %w", anim.Name, i, err)
			}
			tr = track.NewScale(values, options...)

		case gltfAnimPathWeights:
			values, err := e.parser.ReadScalarAccessor(sampler.Output)
			if err != nil {
				return nil, fmt.Errorf("animation %q channel %d: failed to read weight values: %w", anim.Name, i, err)
			}
			targetCount := morphTargetCount(doc, &doc.Nodes[nodeIndex])
			if targetCount == 0 {
				return nil, fmt.Errorf("animation %q channel %d: node %d has no morph targets", anim.Name, i, nodeIndex)
			}
			tr, err = track.NewMorphWeights(values, targetCount, options...)
			if err != nil {
				return nil, fmt.Errorf("animation %q channel %d: %w", anim.Name, i, err)
			}

		default:
			return nil, fmt.Errorf("animation %q channel %d: unknown target path %q", anim.Name, i, ch.Target.Path)
		}

		channels = append(channels, clip.Channel{
			Target:        nodeTargetName(doc, nodeIndex),
			Track:         tr,
			Times:         timestamps,
			Interpolation: interpolation,
		})
	}

	name := anim.Name
	if name == "" {
		name = fmt.Sprintf("animation_%d", animIndex)
	}

	return clip.NewClip(name,
		clip.WithDuration(maxTime),
		clip.WithChannels(channels...),
	), nil
}

func (e *gltfClipExtractorImpl) ExtractAllClips() ([]clip.Clip, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, fmt.Errorf("no document loaded")
	}

	clips := make([]clip.Clip, len(doc.Animations))
	for i := range doc.Animations {
		c, err := e.ExtractClip(i)
		if err != nil {
			return nil, fmt.Errorf("animation %d: %w", i, err)
		}
		clips[i] = c
	}

	return clips, nil
}

// samplerInterpolation maps a glTF sampler interpolation string to the engine
// mode plus the track options its keyframe layout requires. CUBICSPLINE
// samplers store flat (in-tangent, value, out-tangent) triplets per keyframe,
// which is the layout cubic tracks expect.
func samplerInterpolation(mode string) (animatable.Interpolation, []track.TrackBuilderOption) {
	switch mode {
	case gltfAnimInterpolationStep:
		return animatable.InterpolationStep, nil
	case gltfAnimInterpolationCubicSpline:
		return animatable.InterpolationCubicSpline, []track.TrackBuilderOption{track.WithCubicKeyframes()}
	default:
		// glTF defaults to LINEAR when the field is omitted.
		return animatable.InterpolationLinear, nil
	}
}

// nodeTargetName returns the channel target name for a node: its authored
// name, or a positional fallback for unnamed nodes.
func nodeTargetName(doc *gltfDocument, nodeIndex int) string {
	if name := doc.Nodes[nodeIndex].Name; name != "" {
		return name
	}
	return fmt.Sprintf("node_%d", nodeIndex)
}

// morphTargetCount determines how many morph targets a node's mesh has, from
// the node's weights, the mesh's default weights, or the first primitive's
// target list.
func morphTargetCount(doc *gltfDocument, node *gltfNode) int {
	if len(node.Weights) > 0 {
		return len(node.Weights)
	}
	if node.Mesh == nil || *node.Mesh < 0 || *node.Mesh >= len(doc.Meshes) {
		return 0
	}
	mesh := &doc.Meshes[*node.Mesh]
	if len(mesh.Weights) > 0 {
		return len(mesh.Weights)
	}
	if len(mesh.Primitives) > 0 {
		return len(mesh.Primitives[0].Targets)
	}
	return 0
}

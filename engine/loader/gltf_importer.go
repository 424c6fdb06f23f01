package loader

import (
	"fmt"

	"github.com/K0rnli/rift-rewind/engine/model"
	"github.com/K0rnli/rift-rewind/engine/scene"
)

// Asset is an imported glTF asset: the node hierarchy as a scene subtree plus
// the animation clips that target it. Assets are templates; instances are
// cloned from Root so each gets independent transforms and IDs.
type Asset struct {
	// Root is the asset's root object, named after the asset's default scene.
	Root *scene.Object

	// Clips are the asset's animation clips, channels targeted by node name.
	Clips []model.AnimationClip
}

// gltfImporterImpl is the implementation of the gltfImporter interface.
type gltfImporterImpl struct {
	parser gltfParser
}

// gltfImporter defines the interface for converting a parsed glTF document
// into an engine Asset. This is internal to the loader package.
type gltfImporter interface {
	// Import builds the Asset from the parser's document.
	//
	// Returns:
	//   - *Asset: the imported asset
	//   - error: error if the document is missing or malformed
	Import() (*Asset, error)
}

var _ gltfImporter = &gltfImporterImpl{}

// newGLTFImporter creates an importer over a parsed document.
//
// Parameters:
//   - parser: the parser containing a loaded document
//
// Returns:
//   - gltfImporter: the importer
func newGLTFImporter(parser gltfParser) gltfImporter {
	return &gltfImporterImpl{parser: parser}
}

func (im *gltfImporterImpl) Import() (*Asset, error) {
	doc := im.parser.Document()
	if doc == nil {
		return nil, fmt.Errorf("no document loaded")
	}

	sceneIndex := 0
	if doc.Scene != nil {
		sceneIndex = *doc.Scene
	}
	if sceneIndex < 0 || sceneIndex >= len(doc.Scenes) {
		return nil, fmt.Errorf("scene index %d out of range", sceneIndex)
	}
	gs := &doc.Scenes[sceneIndex]

	root := scene.NewObject(gs.Name)
	for _, nodeIndex := range gs.Nodes {
		child, err := im.buildNode(doc, nodeIndex)
		if err != nil {
			return nil, err
		}
		root.AddChild(child)
	}

	clips, err := im.extractClips(doc)
	if err != nil {
		return nil, err
	}

	return &Asset{Root: root, Clips: clips}, nil
}

// buildNode converts one glTF node and its subtree into scene objects.
func (im *gltfImporterImpl) buildNode(doc *gltfDocument, nodeIndex int) (*scene.Object, error) {
	if nodeIndex < 0 || nodeIndex >= len(doc.Nodes) {
		return nil, fmt.Errorf("node index %d out of range", nodeIndex)
	}
	node := &doc.Nodes[nodeIndex]

	obj := scene.NewObject(gltfNodeName(doc, nodeIndex))
	if node.Translation != nil {
		obj.Position = *node.Translation
	}
	if node.Rotation != nil {
		obj.Quaternion = *node.Rotation
	}
	if node.Scale != nil {
		obj.Scale = *node.Scale
	}

	if node.Mesh != nil && *node.Mesh >= 0 && *node.Mesh < len(doc.Meshes) {
		mesh := &doc.Meshes[*node.Mesh]
		obj.IsMesh = true
		if node.Name == "" && mesh.Name != "" {
			obj.Name = mesh.Name
		}
		obj.MaterialName = primaryMaterialName(doc, mesh)
	}

	for _, childIndex := range node.Children {
		child, err := im.buildNode(doc, childIndex)
		if err != nil {
			return nil, err
		}
		obj.AddChild(child)
	}

	return obj, nil
}

// extractClips converts every animation into a clip with name-targeted
// channels, merging translation/rotation/scale samplers per node.
func (im *gltfImporterImpl) extractClips(doc *gltfDocument) ([]model.AnimationClip, error) {
	clips := make([]model.AnimationClip, 0, len(doc.Animations))

	for animIndex := range doc.Animations {
		anim := &doc.Animations[animIndex]

		// channelMap groups channels by node name so translation/rotation/scale
		// merge into a single AnimationChannel per node.
		channelMap := make(map[string]*model.AnimationChannel)
		var channelOrder []string
		var maxTime float32

		for i := range anim.Channels {
			ch := &anim.Channels[i]
			if ch.Target.Node == nil {
				continue
			}
			if ch.Sampler < 0 || ch.Sampler >= len(anim.Samplers) {
				return nil, fmt.Errorf("animation %q channel %d: invalid sampler index %d", anim.Name, i, ch.Sampler)
			}
			sampler := &anim.Samplers[ch.Sampler]

			timestamps, err := im.parser.ReadScalarAccessor(sampler.Input)
			if err != nil {
				return nil, fmt.Errorf("animation %q channel %d: failed to read timestamps: %w", anim.Name, i, err)
			}
			if len(timestamps) > 0 {
				if t := timestamps[len(timestamps)-1]; t > maxTime {
					maxTime = t
				}
			}

			nodeName := gltfNodeName(doc, *ch.Target.Node)
			animCh, exists := channelMap[nodeName]
			if !exists {
				animCh = &model.AnimationChannel{NodeName: nodeName}
				channelMap[nodeName] = animCh
				channelOrder = append(channelOrder, nodeName)
			}

			switch ch.Target.Path {
			case gltfAnimPathTranslation:
				values, err := im.parser.ReadVec3Accessor(sampler.Output)
				if err != nil {
					return nil, fmt.Errorf("animation %q channel %d: failed to read translation values: %w", anim.Name, i, err)
				}
				animCh.PositionKeys = vectorKeys(timestamps, values)
			case gltfAnimPathRotation:
				values, err := im.parser.ReadVec4Accessor(sampler.Output)
				if err != nil {
					return nil, fmt.Errorf("animation %q channel %d: failed to read rotation values: %w", anim.Name, i, err)
				}
				animCh.RotationKeys = quaternionKeys(timestamps, values)
			case gltfAnimPathScale:
				values, err := im.parser.ReadVec3Accessor(sampler.Output)
				if err != nil {
					return nil, fmt.Errorf("animation %q channel %d: failed to read scale values: %w", anim.Name, i, err)
				}
				animCh.ScaleKeys = vectorKeys(timestamps, values)
			case gltfAnimPathWeights:
				// Morph target weights are not supported; skip
				continue
			}
		}

		channels := make([]model.AnimationChannel, 0, len(channelOrder))
		for _, name := range channelOrder {
			channels = append(channels, *channelMap[name])
		}

		name := anim.Name
		if name == "" {
			name = fmt.Sprintf("animation_%d", animIndex)
		}

		clips = append(clips, model.AnimationClip{
			Name:     name,
			Duration: maxTime,
			Channels: channels,
		})
	}

	return clips, nil
}

// gltfNodeName returns a stable name for a node, generating one for unnamed
// nodes so animation channels can still target them.
func gltfNodeName(doc *gltfDocument, nodeIndex int) string {
	if name := doc.Nodes[nodeIndex].Name; name != "" {
		return name
	}
	return fmt.Sprintf("node_%d", nodeIndex)
}

// primaryMaterialName returns the first primitive's material name, matching
// how state configs key off a mesh's primary material.
func primaryMaterialName(doc *gltfDocument, mesh *gltfMesh) string {
	for i := range mesh.Primitives {
		prim := &mesh.Primitives[i]
		if prim.Material != nil && *prim.Material >= 0 && *prim.Material < len(doc.Materials) {
			return doc.Materials[*prim.Material].Name
		}
	}
	return ""
}

func vectorKeys(timestamps []float32, values [][3]float32) []model.VectorKeyframe {
	n := min(len(timestamps), len(values))
	keys := make([]model.VectorKeyframe, n)
	for i := range keys {
		keys[i] = model.VectorKeyframe{Time: timestamps[i], Value: values[i]}
	}
	return keys
}

func quaternionKeys(timestamps []float32, values [][4]float32) []model.QuaternionKeyframe {
	n := min(len(timestamps), len(values))
	keys := make([]model.QuaternionKeyframe, n)
	for i := range keys {
		keys[i] = model.QuaternionKeyframe{Time: timestamps[i], Value: values[i]}
	}
	return keys
}

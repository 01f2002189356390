package pom

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/matzehuels/jabu/pkg/artifact"
	"github.com/matzehuels/jabu/pkg/errors"
)

const xmlDeclaration = "<?xml"

type pomProject struct {
	XMLName      xml.Name         `xml:"project"`
	Dependencies *pomDependencies `xml:"dependencies"`
}

type pomDependencies struct {
	Dependency []pomDependency `xml:"dependency"`
}

type pomDependency struct {
	GroupID    *string `xml:"groupId"`
	ArtifactID *string `xml:"artifactId"`
	Version    *string `xml:"version"`
}

// Dependencies parses a POM document and returns its dependencies in
// declaration order.
func Dependencies(text string) ([]artifact.Coordinate, error) {
	dec := xml.NewDecoder(strings.NewReader(stripDeclaration(text)))
	var pom pomProject
	if err := dec.Decode(&pom); err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestParse, err, "decode pom")
	}
	if err := checkTrailer(dec); err != nil {
		return nil, err
	}
	if pom.Dependencies == nil {
		return nil, errors.New(errors.ErrCodeManifestParse, "pom has no <dependencies> element")
	}

	deps := make([]artifact.Coordinate, 0, len(pom.Dependencies.Dependency))
	for i, d := range pom.Dependencies.Dependency {
		c, err := d.coordinate()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeManifestParse, err, "dependency #%d", i+1)
		}
		deps = append(deps, c)
	}
	return deps, nil
}

// DependenciesBytes is [Dependencies] for raw file contents.
func DependenciesBytes(data []byte) ([]artifact.Coordinate, error) {
	return Dependencies(string(data))
}

func (d pomDependency) coordinate() (artifact.Coordinate, error) {
	g, err := required("groupId", d.GroupID)
	if err != nil {
		return artifact.Coordinate{}, err
	}
	a, err := required("artifactId", d.ArtifactID)
	if err != nil {
		return artifact.Coordinate{}, err
	}
	v, err := required("version", d.Version)
	if err != nil {
		return artifact.Coordinate{}, err
	}
	return artifact.New(g, a, v), nil
}

func required(name string, v *string) (string, error) {
	if v == nil {
		return "", errors.New(errors.ErrCodeManifestParse, "missing <%s>", name)
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return "", errors.New(errors.ErrCodeManifestParse, "empty <%s>", name)
	}
	return s, nil
}

// checkTrailer consumes the tokens after the root element. Only whitespace,
// comments and processing instructions may follow it.
func checkTrailer(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(errors.ErrCodeManifestParse, err, "decode pom")
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return errors.New(errors.ErrCodeManifestParse, "text after </project>")
			}
		default:
			return errors.New(errors.ErrCodeManifestParse, "content after </project>")
		}
	}
}

// stripDeclaration removes a leading XML declaration (through its closing
// "?>"), so a POM declaring a non-UTF-8 encoding still decodes. Documents
// that do not start with a declaration are returned unmodified.
func stripDeclaration(text string) string {
	trimmed := strings.TrimLeft(text, " \t\r\n")
	if !strings.HasPrefix(trimmed, xmlDeclaration) {
		return text
	}
	_, rest, ok := strings.Cut(trimmed, "?>")
	if !ok {
		return text
	}
	return rest
}

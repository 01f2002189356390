package pom

import (
	"reflect"
	"testing"

	"github.com/matzehuels/jabu/pkg/artifact"
	"github.com/matzehuels/jabu/pkg/errors"
)

const samplePOMBody = `<project xmlns="http://maven.apache.org/POM/4.0.0" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd">
    <modelVersion>4.0.0</modelVersion>
    <groupId>me.folgue</groupId>
    <artifactId>adt_tar4</artifactId>
    <version>1.0-SNAPSHOT</version>
    <packaging>jar</packaging>
    <properties>
        <project.build.sourceEncoding>UTF-8</project.build.sourceEncoding>
        <maven.compiler.source>17</maven.compiler.source>
    </properties>

    <dependencies>
        <dependency>
            <groupId>org.mariadb.jdbc</groupId>
            <artifactId>mariadb-java-client</artifactId>
            <version>3.3.3</version>
        </dependency>
        <dependency>
            <groupId>org.hibernate.orm</groupId>
            <artifactId>hibernate-core</artifactId>
            <version>6.4.4.Final</version>
        </dependency>
        <dependency>
            <groupId>org.junit.jupiter</groupId>
            <artifactId>junit-jupiter</artifactId>
            <version>5.10.0</version>
        </dependency>
    </dependencies>
</project>
`

var sampleDeps = []artifact.Coordinate{
	artifact.New("org.mariadb.jdbc", "mariadb-java-client", "3.3.3"),
	artifact.New("org.hibernate.orm", "hibernate-core", "6.4.4.Final"),
	artifact.New("org.junit.jupiter", "junit-jupiter", "5.10.0"),
}

func TestDependencies(t *testing.T) {
	got, err := Dependencies(samplePOMBody)
	if err != nil {
		t.Fatalf("Dependencies failed: %v", err)
	}
	if !reflect.DeepEqual(got, sampleDeps) {
		t.Errorf("Dependencies() = %v, want %v", got, sampleDeps)
	}
}

func TestDependencies_Declaration(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"without declaration", samplePOMBody},
		{"with declaration", `<?xml version="1.0" encoding="UTF-8"?>` + "\n" + samplePOMBody},
		{"leading whitespace", "\n  " + `<?xml version="1.0" encoding="UTF-8"?>` + "\n" + samplePOMBody},
		{"non-utf8 encoding", `<?xml version="1.0" encoding="ISO-8859-1"?>` + "\n" + samplePOMBody},
		{"same line", `<?xml version="1.0"?>` + samplePOMBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dependencies(tt.doc)
			if err != nil {
				t.Fatalf("Dependencies failed: %v", err)
			}
			if !reflect.DeepEqual(got, sampleDeps) {
				t.Errorf("Dependencies() = %v, want %v", got, sampleDeps)
			}
		})
	}
}

func TestDependencies_Order(t *testing.T) {
	doc := `<project><dependencies>
  <dependency><groupId>c</groupId><artifactId>c</artifactId><version>3</version></dependency>
  <dependency><groupId>a</groupId><artifactId>a</artifactId><version>1</version></dependency>
  <dependency><groupId>b</groupId><artifactId>b</artifactId><version>2</version></dependency>
  <dependency><groupId>a</groupId><artifactId>a</artifactId><version>1</version></dependency>
</dependencies></project>`

	got, err := Dependencies(doc)
	if err != nil {
		t.Fatalf("Dependencies failed: %v", err)
	}
	want := []artifact.Coordinate{
		artifact.New("c", "c", "3"),
		artifact.New("a", "a", "1"),
		artifact.New("b", "b", "2"),
		artifact.New("a", "a", "1"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dependencies() = %v, want %v", got, want)
	}
}

func TestDependencies_IgnoresOtherLists(t *testing.T) {
	doc := `<project>
  <!-- managed versions are not dependencies -->
  <dependencyManagement>
    <dependencies>
      <dependency><groupId>managed</groupId><artifactId>bom</artifactId><version>1</version></dependency>
    </dependencies>
  </dependencyManagement>
  <dependencies>
    <dependency>
      <groupId> org.slf4j </groupId>
      <artifactId>slf4j-api</artifactId>
      <version>2.0.9</version>
      <scope>test</scope>
      <exclusions><exclusion><groupId>x</groupId><artifactId>y</artifactId></exclusion></exclusions>
    </dependency>
  </dependencies>
</project>`

	got, err := Dependencies(doc)
	if err != nil {
		t.Fatalf("Dependencies failed: %v", err)
	}
	want := []artifact.Coordinate{artifact.New("org.slf4j", "slf4j-api", "2.0.9")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dependencies() = %v, want %v", got, want)
	}
}

func TestDependencies_Empty(t *testing.T) {
	got, err := Dependencies(`<project><dependencies/></project>`)
	if err != nil {
		t.Fatalf("Dependencies failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Dependencies() = %v, want empty", got)
	}
}

func TestDependencies_TrailingMisc(t *testing.T) {
	docs := []string{
		"<project><dependencies/></project>\n\n",
		"<project><dependencies/></project>\n<!-- generated -->\n",
		"<project><dependencies/></project><?processed yes?>",
	}
	for _, doc := range docs {
		if _, err := Dependencies(doc); err != nil {
			t.Errorf("Dependencies(%q) failed: %v", doc, err)
		}
	}
}

func TestDependencies_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no dependencies element", `<project><groupId>x</groupId></project>`},
		{"wrong root", `<settings><dependencies/></settings>`},
		{"malformed", `<project><dependencies>`},
		{"empty document", ``},
		{"declaration only", `<?xml version="1.0"?>`},
		{"missing version", `<project><dependencies><dependency><groupId>g</groupId><artifactId>a</artifactId></dependency></dependencies></project>`},
		{"empty groupId", `<project><dependencies><dependency><groupId> </groupId><artifactId>a</artifactId><version>1</version></dependency></dependencies></project>`},
		{"missing artifactId", `<project><dependencies><dependency><groupId>g</groupId><version>1</version></dependency></dependencies></project>`},
		{"unclosed element after root", `<project><dependencies/></project><unclosed`},
		{"stray end tag after root", `<project><dependencies/></project></bogus>`},
		{"text after root", `<project><dependencies/></project>trailing text`},
		{"second root element", `<project><dependencies/></project><project/>`},
		{"case-sensitive field", `<project><dependencies><dependency><GroupId>g</GroupId><artifactId>a</artifactId><version>1</version></dependency></dependencies></project>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dependencies(tt.doc)
			if err == nil {
				t.Fatalf("Dependencies() = %v, want error", got)
			}
			if !errors.Is(err, errors.ErrCodeManifestParse) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeManifestParse)
			}
		})
	}
}

func TestStripDeclaration(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<project/>", "<project/>"},
		{"<?xml version=\"1.0\"?>\n<project/>", "\n<project/>"},
		{"  <?xml version=\"1.0\"?><project/>", "<project/>"},
		{"<!-- c --><project/>", "<!-- c --><project/>"},
		{"<?xml broken", "<?xml broken"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := stripDeclaration(tt.input); got != tt.want {
				t.Errorf("stripDeclaration(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

package docs

import (
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Every topic must parse as markdown and open with a level-1 heading, so
// the 'topic' command always renders a titled document.
func TestTopicsParse(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no documentation topics found")
	}
	topics = append(topics, "readme")

	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("GetTopic(%q) error = %v", topic, err)
			}

			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			var hasTitle bool
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
					hasTitle = true
					return ast.WalkStop, nil
				}
				return ast.WalkContinue, nil
			})
			if !hasTitle {
				t.Errorf("topic %q has no top-level heading", topic)
			}
		})
	}
}

func TestGetAllTopics_ExcludesReadme(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	if slices.Contains(topics, "readme") {
		t.Errorf("readme should not be listed as a topic: %v", topics)
	}
	if !slices.IsSorted(topics) {
		t.Errorf("topics are not sorted: %v", topics)
	}
}

func TestGetTopics_Star(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) error = %v", err)
	}
	for _, topic := range []string{"Cost Basis", "Review", "Backup"} {
		if !strings.Contains(all, "# "+topic) {
			t.Errorf("GetTopics(*) is missing the %q document", topic)
		}
	}

	if _, err := GetTopics("no-such-topic"); err == nil {
		t.Errorf("GetTopics(unknown) expected an error")
	}
}

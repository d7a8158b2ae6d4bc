package extract

import (
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
)

// docComment returns the JSDoc body text attached to a declaration, or "".
// When several JSDoc blocks precede the node, the closest one wins.
func docComment(node *ast.Node) string {
	if node == nil {
		return ""
	}
	jsdocs := node.JSDoc(nil)
	if len(jsdocs) == 0 {
		return ""
	}
	jsdoc := jsdocs[len(jsdocs)-1].AsJSDoc()
	if jsdoc == nil || jsdoc.Comment == nil {
		return ""
	}
	return strings.TrimSpace(nodeListText(jsdoc.Comment))
}

// nodeListText joins the text content of a JSDoc comment node list.
// JSDoc comments are stored as lists of text and {@link} nodes.
func nodeListText(nodeList *ast.NodeList) string {
	if nodeList == nil {
		return ""
	}
	var parts []string
	for _, commentNode := range nodeList.Nodes {
		switch commentNode.Kind {
		case ast.KindJSDocText:
			parts = append(parts, commentNode.Text())
		case ast.KindJSDocLink, ast.KindJSDocLinkCode, ast.KindJSDocLinkPlain:
			parts = append(parts, commentNode.Text())
		}
	}
	return strings.Join(parts, "")
}

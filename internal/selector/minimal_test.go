package selector_test

import (
	"testing"

	"github.com/rollinbe/CodeScribe-CLI/internal/selector"
)

// TestIsNoise verifies the fixed minimal-mode exclusion table.
func TestIsNoise(testingInstance *testing.T) {
	testCases := []struct {
		testName     string
		relativePath string
		expected     bool
	}{
		{testName: "npm lockfile", relativePath: "package-lock.json", expected: true},
		{testName: "nested npm lockfile", relativePath: "client/package-lock.json", expected: true},
		{testName: "tsconfig", relativePath: "tsconfig.json", expected: true},
		{testName: "tsconfig variant", relativePath: "tsconfig.app.json", expected: true},
		{testName: "angular workspace", relativePath: "angular.json", expected: true},
		{testName: "dist segment", relativePath: "dist/bundle.js", expected: true},
		{testName: "nested dist segment", relativePath: "client/dist/main.js", expected: true},
		{testName: "distribution is not dist", relativePath: "distribution/notes.md", expected: false},
		{testName: "entry page under src", relativePath: "src/index.html", expected: true},
		{testName: "entry page at root", relativePath: "index.html", expected: false},
		{testName: "environment config", relativePath: "src/environments/environment.prod.ts", expected: true},
		{testName: "global stylesheet", relativePath: "src/styles.css", expected: true},
		{testName: "dotnet project", relativePath: "Server/Server.csproj", expected: true},
		{testName: "dotnet solution", relativePath: "Server.sln", expected: true},
		{testName: "case-insensitive solution", relativePath: "SERVER.SLN", expected: true},
		{testName: "application settings", relativePath: "Server/appsettings.json", expected: true},
		{testName: "pipenv lockfile", relativePath: "Pipfile.lock", expected: true},
		{testName: "poetry lockfile", relativePath: "poetry.lock", expected: true},
		{testName: "business source survives", relativePath: "src/app/app.component.ts", expected: false},
		{testName: "python source survives", relativePath: "main.py", expected: false},
	}
	for index, testCase := range testCases {
		actual := selector.IsNoise(testCase.relativePath)
		if actual != testCase.expected {
			testingInstance.Errorf("case %d (%s): expected %v for %q, got %v",
				index, testCase.testName, testCase.expected, testCase.relativePath, actual)
		}
	}
}

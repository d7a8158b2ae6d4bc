package extract

import "testing"

func TestMatchesEntry(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		include []string
		exclude []string
		want    bool
	}{
		{
			name:    "doublestar include",
			path:    "/repo/src/models/user.ts",
			include: []string{"src/**/*.ts"},
			want:    true,
		},
		{
			name:    "doublestar include nested",
			path:    "/repo/src/a/b/c/d.ts",
			include: []string{"src/**/*.ts"},
			want:    true,
		},
		{
			name:    "include misses other dir",
			path:    "/repo/lib/util.ts",
			include: []string{"src/**/*.ts"},
			want:    false,
		},
		{
			name:    "exclude wins over include",
			path:    "/repo/src/user.spec.ts",
			include: []string{"src/**/*.ts"},
			exclude: []string{"**/*.spec.ts"},
			want:    false,
		},
		{
			name:    "empty include matches everything",
			path:    "/repo/anything.ts",
			include: nil,
			want:    true,
		},
		{
			name:    "empty include still honors exclude",
			path:    "/repo/skip.ts",
			include: nil,
			exclude: []string{"skip.ts"},
			want:    false,
		},
		{
			name:    "basename pattern",
			path:    "/repo/src/index.ts",
			include: []string{"index.ts"},
			want:    true,
		},
		{
			name:    "directory-qualified pattern matches in that directory",
			path:    "/repo/src/app.ts",
			include: []string{"src/*.ts"},
			want:    true,
		},
		{
			name:    "directory-qualified pattern misses other directory",
			path:    "/repo/lib/app.ts",
			include: []string{"src/*.ts"},
			want:    false,
		},
		{
			name:    "single star does not cross directories",
			path:    "/repo/src/nested/app.ts",
			include: []string{"src/*.ts"},
			want:    false,
		},
		{
			name:    "second include pattern matches",
			path:    "/repo/gen/types.ts",
			include: []string{"src/**/*.ts", "gen/**/*.ts"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchesEntry(tt.path, tt.include, tt.exclude)
			if got != tt.want {
				t.Errorf("MatchesEntry(%q, %v, %v) = %v, want %v", tt.path, tt.include, tt.exclude, got, tt.want)
			}
		})
	}
}

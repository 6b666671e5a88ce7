package container

import (
	"os/exec"
	"testing"
)

func TestDetectRuntime_PrefersPodman(t *testing.T) {
	// Skip if podman is not available
	if _, err := exec.LookPath("podman"); err != nil {
		t.Skip("podman not available")
	}

	runtime, err := DetectRuntime()
	if err != nil {
		t.Fatalf("DetectRuntime() failed: %v", err)
	}

	// Podman should be preferred if both are available
	if runtime != "podman" {
		t.Errorf("expected podman, got %s", runtime)
	}
}

func TestDetectRuntime_FallsBackToDocker(t *testing.T) {
	// This test only runs if docker is available but podman is not
	if _, err := exec.LookPath("podman"); err == nil {
		t.Skip("podman is available, docker fallback not tested")
	}
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not available")
	}

	runtime, err := DetectRuntime()
	if err != nil {
		t.Fatalf("DetectRuntime() failed: %v", err)
	}

	if runtime != "docker" {
		t.Errorf("expected docker, got %s", runtime)
	}
}

func TestDetectRuntime_VerifiesBinaryWorks(t *testing.T) {
	runtime, err := DetectRuntime()
	if err != nil {
		t.Skip("no container runtime available")
	}

	// The detected runtime should be able to run 'version'
	cmd := exec.Command(runtime, "version")
	if err := cmd.Run(); err != nil {
		t.Errorf("%s version failed: %v", runtime, err)
	}
}

package platform

// SetupTestBridge installs bridge and a synchronous dispatch function for
// testing. The cleanup function should be testing.T.Cleanup or equivalent;
// it registers a teardown that calls ResetForTest.
//
//	platform.SetupTestBridge(t.Cleanup, bridge)
func SetupTestBridge(cleanup func(func()), bridge NativeBridge) {
	SetNativeBridge(bridge)
	RegisterDispatch(func(cb func()) { cb() })
	cleanup(ResetForTest)
}

package metamodel

// buildOntology declares the complete ontology: the metatype level, the
// instance-role and type-label hierarchies, the decomposition methods, the
// claims, and the contribution edges. Everything the assistant knows about
// NFRs lives here.
func buildOntology(b *builder) {
	r := b.r

	// ------------------------------------------------------------------
	// Level 1: metatypes. Each one declares the attributes it grants to
	// the types it governs; the grants accumulate down the chain.
	// ------------------------------------------------------------------

	propositionMeta := b.metaType("PropositionMetaClass", nil, "priority", "label")
	softgoalMeta := b.metaType("SoftgoalMetaClass", propositionMeta, "type", "topic")
	nfrSoftgoalMeta := b.metaType("NFRSoftgoalMetaClass", softgoalMeta)
	operationalizingSoftgoalMeta := b.metaType("OperationalizingSoftgoalMetaClass", softgoalMeta)

	// The claim metatype is the closed special case: it resets the grant
	// to a single attribute instead of accumulating. The reset itself is
	// applied in Registry.AttributesOf.
	claimSoftgoalMeta := b.metaType("ClaimSoftgoalMetaClass", softgoalMeta, "argument")
	r.claimMeta = claimSoftgoalMeta

	softgoalTypeMeta := b.metaType("SoftgoalTypeMetaClass", nil)
	contributionMeta := b.metaType("ContributionMetaClass", propositionMeta)
	methodMeta := b.metaType("MethodMetaClass", nil)
	decompositionMethodMeta := b.metaType("DecompositionMethodMetaClass", methodMeta)
	b.metaType("NFRDecompositionMethodMetaClass", decompositionMethodMeta)
	b.metaType("OperationalizationDecompositionMethodMetaClass", decompositionMethodMeta)
	b.metaType("ClaimDecompositionMethodMetaClass", decompositionMethodMeta)
	_ = contributionMeta

	// ------------------------------------------------------------------
	// Level 2: the instance-role hierarchy, rooted at Proposition.
	// ------------------------------------------------------------------

	proposition := b.typeNode("Proposition", nil, propositionMeta,
		"A statement or assertion in the NFR framework")
	softgoal := b.typeNode("Softgoal", proposition, softgoalMeta,
		"A goal without clear-cut satisfaction criteria")
	nfrSoftgoal := b.typeNode("NFRSoftgoal", softgoal, nfrSoftgoalMeta,
		"A softgoal representing a non-functional requirement")
	operationalizingSoftgoal := b.typeNode("OperationalizingSoftgoal", softgoal, operationalizingSoftgoalMeta,
		"A softgoal representing a concrete design or implementation technique")
	claimSoftgoal := b.typeNode("ClaimSoftgoal", softgoal, claimSoftgoalMeta,
		"A softgoal recording attribution and justification for a decomposition or technique")

	// ------------------------------------------------------------------
	// Level 2: the type-label hierarchy, rooted at SoftgoalType. A role
	// class carries a TypeRef into this hierarchy so that structural role
	// and semantic classification vary independently.
	// ------------------------------------------------------------------

	softgoalType := b.typeNode("SoftgoalType", nil, softgoalTypeMeta,
		"Base type for softgoals")
	nfrType := b.typeNode("NFRSoftgoalType", softgoalType, softgoalTypeMeta,
		"Base class for NFR quality attribute types")
	opType := b.typeNode("OperationalizingSoftgoalType", softgoalType, softgoalTypeMeta,
		"Base class for operationalizing technique types")
	claimType := b.typeNode("ClaimSoftgoalType", softgoalType, softgoalTypeMeta,
		"Base class for claim types")

	nfr := func(name, description string) *TypeNode {
		return b.typeNode(name, nfrType, softgoalTypeMeta, description)
	}
	op := func(name, description string) *TypeNode {
		return b.typeNode(name, opType, softgoalTypeMeta, description)
	}
	cite := func(name, description string) *TypeNode {
		return b.typeNode(name, claimType, softgoalTypeMeta, description)
	}

	// Claim types: the claim IS the type; the description is the citation.
	smithPerformanceClaim := cite("SmithPerformanceClaimType",
		"According to Smith's User-Centered Performance Metrics")
	ciaTriadClaim := cite("CIATriadClaimType",
		"Trusted Computer System Evaluation Criteria (TCSEC/Orange Book, 1985) - Defines security through Confidentiality, Integrity, and Availability")
	windowsTaskManagerClaim := cite("WindowsTaskManagerClaimType",
		"Microsoft Windows Task Manager - Performance Tab")
	traditionalCSPerformanceClaim := cite("TraditionalCSPerformanceClaimType",
		"Traditional Computer Science - Time and Space Complexity")
	wikipediaEncryptionTypesClaim := cite("WikipediaEncryptionTypesClaimType",
		"Wikipedia (Encryption article) - Classifies encryption into Symmetric-key and Public-key (asymmetric) schemes")
	cite("ChungNFRFrameworkClaimType",
		"According to Chung et al.'s NFR Framework (2000)")
	iso25010UsabilityClaim := cite("ISO25010UsabilityClaimType",
		"ISO/IEC 25010:2011 Systems and software Quality Requirements and Evaluation (SQuaRE) - Defines usability through five quality sub-characteristics")
	manduchiSafetyClaim := cite("ManduchiSafetyClaimType",
		"Manduchi et al. (2024). Smartphone apps for indoor wayfinding for blind users. ACM Transactions on Accessible Computing - Advance warnings minimize input to focus on safety")
	manduchiUsabilityClaim := cite("ManduchiUsabilityClaimType",
		"Manduchi et al. (2024). Smartphone apps for indoor wayfinding for blind users - Multimodal feedback enables hands-free operation")
	assistUsabilityClaim := cite("ASSISTUsabilityClaimType",
		"ASSIST (2020). Indoor navigation assistant for blind and visually impaired people - Personalized interfaces improve usability by adapting to unique user experiences")
	pmcCognitiveLoadClaim := cite("PMCCognitiveLoadClaimType",
		"PMC (2024). Comprehensive review on NUI, multi-sensory interfaces for visually impaired users - Concise audio reduces cognitive overburden")
	pmcReceptivityClaim := cite("PMCReceptivityClaimType",
		"PMC (2024). Comprehensive review on NUI, multi-sensory interfaces for visually impaired users - Non-speech sounds improve receptivity")
	sensorsSafetyClaim := cite("SensorsSafetyClaimType",
		"Sensors (2012). An Indoor Navigation System for the Visually Impaired - Positioning accuracy of ≤0.4m enables safe navigation")
	pouloseSensorFusionClaim := cite("PouloseSensorFusionClaimType",
		"Poulose & Kim (2019). A Sensor Fusion Framework for Indoor Localization Using Smartphone Sensors - Sensor fusion reduces positioning error to 0.44-1.17m")
	nielsenLearnabilityClaim := cite("NielsenLearnabilityClaimType",
		"Nielsen Norman Group (2019). How to Measure Learnability of a User Interface - Steep learning curves enable proficiency within approximately 4 trials")

	// NFR quality attribute types.
	performance := nfr("PerformanceType",
		"System response time, throughput, and efficiency; system operation speed/performance; optimality")
	timePerformance := nfr("TimePerformanceType",
		"Performance quality related to time or temporal aspects; how fast operations complete; speed and quickness; time efficiency")
	spacePerformance := nfr("SpacePerformanceType",
		"Performance quality related to space or memory usage")
	responsivenessPerformance := nfr("ResponsivenessPerformanceType",
		"User-perceived system responsiveness and interactivity")
	cpuUtilization := nfr("CPUUtilizationType",
		"Processor usage and computational performance")
	memoryUsage := nfr("MemoryUsageType",
		"RAM utilization and memory consumption")
	diskTime := nfr("DiskTimeType",
		"Disk I/O activity and storage access time")
	networkThroughput := nfr("NetworkThroughputType",
		"Network bandwidth utilization and data transfer rate")
	gpuUtilization := nfr("GPUUtilizationType",
		"Graphics processor usage and rendering performance")
	security := nfr("SecurityType",
		"Protection from unauthorized access and threats")
	confidentiality := nfr("ConfidentialityType",
		"Protecting information from unauthorized disclosure")
	integrity := nfr("IntegrityType",
		"Protecting information from unauthorized modification")
	availability := nfr("AvailabilityType",
		"Ensuring systems and data are accessible when needed ubiquitous access; available everywhere and anywhere; universal availability; always accessible; system uptime and continuous operation")
	usability := nfr("UsabilityType",
		"Ease of use and user experience; comfortable interaction; user-friendly interface; easy to learn and use; intuitive design; pleasant and convenient user experience")
	reliability := nfr("ReliabilityType",
		"System dependability and consistency")
	maintainability := nfr("MaintainabilityType",
		"Ease of system maintenance and evolution")
	accuracy := nfr("AccuracyType",
		"The number of correctly predicted data points out of all the data points")
	adaptability := nfr("AdaptabilityType",
		"The ability of a system to work well in different but related contexts; automatic adjustment to different environments; operates across various platforms and conditions; context-aware behavior")
	bias := nfr("BiasType",
		"A phenomenon that occurs when an algorithm produces results that are systematically prejudiced due to erroneous assumptions in the ML process")
	completeness := nfr("CompletenessType",
		"An indication of the comprehensiveness of available data, as a proportion of the entire data set, to address specific information requirements")
	complexity := nfr("ComplexityType",
		"When a system or solution has many components, interrelations or interactions, and is difficult to understand")
	consistency := nfr("ConsistencyType",
		"A series of measurements of the same project carried out by different raters using the same method should produce similar results")
	correctness := nfr("CorrectnessType",
		"The output of the system matches the expectations outlined in the requirements, and the system operates without failure")
	domainAdaptation := nfr("DomainAdaptationType",
		"The ability of a model trained on a source domain to be used in a different—but related—domain")
	efficiency := nfr("EfficiencyType",
		"The ability to accomplish something with minimal time and effort, resource amount used in relation to the results achieved")
	ethics := nfr("EthicsType",
		"Concerned with adding or ensuring moral behaviors")
	explainability := nfr("ExplainabilityType",
		"The extent to which the internal mechanics of ML-enabled system can be explained in human terms")
	fairness := nfr("FairnessType",
		"The ability of a system to operate in a fair and unbiased manner")
	faultTolerance := nfr("FaultToleranceType",
		"The ability of a system to continue operating without interruption when one or more of its components fail")
	flexibility := nfr("FlexibilityType",
		"The ability of a system to react/adapt to changing demands or conditions; user can configure and tailor settings; support for individual preferences; flexible configuration options")
	interpretability := nfr("InterpretabilityType",
		"The extraction of relevant knowledge from a model concerning relationships either contained in data or learned by the model")
	interoperability := nfr("InteroperabilityType",
		"The ability for two systems to communicate effectively")
	justifiability := nfr("JustifiabilityType",
		"The ability to show the output of an ML-enabled system to be right or reasonable")
	portability := nfr("PortabilityType",
		"The ability to transfer a system or element of a system from one environment to another")
	privacy := nfr("PrivacyType",
		"An algorithm is private if an observer examining the output is not able to determine whether a specific individual's information was used in the computation")
	repeatability := nfr("RepeatabilityType",
		"The variation in measurements taken by a single instrument or person under the same conditions")
	retrainability := nfr("RetrainabilityType",
		"The ability to re-run the process that generated the previously selected model on a new training set of data")
	reproducibility := nfr("ReproducibilityType",
		"One can repeatedly run your algorithm on certain datasets and obtain the same (or similar) results")
	reusability := nfr("ReusabilityType",
		"The ability of reusing the whole or the greater part of the system component for similar but different purpose")
	safety := nfr("SafetyType",
		"The absence of failures or conditions that render a system dangerous; protection from harm, hazards, and unsafe conditions; ensuring safe operation and navigation; preventing accidents and injury to users")
	scalability := nfr("ScalabilityType",
		"The ability to increase or decrease the capacity of the system in response to changing demands")
	testability := nfr("TestabilityType",
		"The ability of the system to support testing by offering relevant information or ensuring the visibility of failures")
	transparency := nfr("TransparencyType",
		"The extent to which a human user can infer why the system made a particular decision or produced a particular externally-visible behaviour")
	traceability := nfr("TraceabilityType",
		"The ability to trace work items across the development lifecycle")
	trust := nfr("TrustType",
		"A trusted system is a system that is relied upon to a specified extent to enforce a specified security, or a security policy")
	legalCompliance := nfr("LegalComplianceType",
		"Legal requirements, regulatory compliance, contractual obligations, and adherence to laws and standards")
	lookFeel := nfr("LookFeelType",
		"Visual appearance, UI aesthetics, design appeal, user interface look and style; comfortable visual experience; pleasing presentation; attractive design")
	recoverability := nfr("RecoverabilityType",
		"Ability of the system to recover from failures and restore normal operation")
	diagnosability := nfr("DiagnosabilityType",
		"Ease of identifying, isolating, and troubleshooting system problems")
	compatibility := nfr("CompatibilityType",
		"Ability to work with existing systems, data formats, and standards")
	deterministicBehavior := nfr("DeterministicBehaviorType",
		"Predictable, repeatable system behavior given the same inputs")
	learnability := nfr("LearnabilityType",
		"Degree to which a system can be used by specified users to achieve specified goals of learning to use the system with effectiveness, efficiency, freedom from risk and satisfaction")
	memorability := nfr("MemorabilityType",
		"Degree to which a system can be remembered by users after a period of non-use")
	errorPrevention := nfr("ErrorPreventionType",
		"Degree to which a system prevents users from making errors")
	satisfaction := nfr("SatisfactionType",
		"Degree to which user needs are satisfied when a system is used in a specified context of use")

	// Operationalizing technique types.
	indexing := op("IndexingType",
		"Using database indexes to improve query performance")
	caching := op("CachingType",
		"Storing frequently accessed data in cache")
	encryption := op("EncryptionType",
		"Encrypting data to protect confidentiality")
	symmetricKeyEncryption := b.typeNode("SymmetricKeyEncryptionType", encryption, softgoalTypeMeta,
		"Symmetric-key encryption - same key for encryption and decryption")
	publicKeyEncryption := b.typeNode("PublicKeyEncryptionType", encryption, softgoalTypeMeta,
		"Public-key (asymmetric) encryption - different keys for encryption and decryption")
	rsaEncryption := b.typeNode("RSAEncryptionType", publicKeyEncryption, softgoalTypeMeta,
		"RSA public-key encryption")
	auditing := op("AuditingType",
		"Recording system events, activities, or data changes for compliance and verification")
	exceptionHandling := op("ExceptionHandlingType",
		"Managing and responding to runtime errors and exceptions")
	search := op("SearchType",
		"Database or information search operations")
	display := op("DisplayType",
		"Data visualization and presentation operations")
	refresh := op("RefreshType",
		"Periodic data update operations")
	logOp := op("LogType",
		"Recording system events, activities, or data changes")
	authorization := op("AuthorizationType",
		"Verifying user identity and authorizing access")
	authentication := op("AuthenticationType",
		"Verifying user identity and authorizing access")
	accessRuleValidation := op("AccessRuleValidationType",
		"A set of rules or conditions applied to data fields (in tables, forms, queries) that verify data entered by users meets specific standards before it's stored.")
	identification := op("IdentificationType",
		"The process of claiming an identity by presenting an identifier (username, user ID, email address, device ID, certificate). Distinct from authentication, which verifies the claimed identity.")
	syncOp := op("SyncType",
		"Synchronizing or updating data across systems")
	monitor := op("MonitorType",
		"Tracking, monitoring, or observing system behavior")
	validation := op("ValidationType",
		"Checking, verifying, or validating data or conditions")
	notify := op("NotifyType",
		"Sending alerts, notifications, or informing users")
	store := op("StoreType",
		"Persisting, saving, or storing data")
	export := op("ExportType",
		"Exporting or importing data to/from external systems")
	backup := op("BackupType",
		"Backing up or restoring data for recovery")
	compression := op("CompressionType",
		"Data size reduction through encoding algorithms")
	loadBalancing := op("LoadBalancingType",
		"Distribution of workload across multiple computing resources")
	virtualization := op("VirtualizationType",
		"Abstraction of hardware resources into virtual instances")
	networkMonitoring := op("NetworkMonitoringType",
		"Analysis and inspection of network traffic for security and performance")
	dataWarehouse := op("DataWarehouseType",
		"Centralized storage and analytics for business intelligence")
	simulation := op("SimulationType",
		"Model-based computation for prediction and analysis")
	earlyWarning := op("EarlyWarningType",
		"Provide advance warnings before required actions to allow user preparation time")
	multimodalFeedback := op("MultimodalFeedbackType",
		"Provide information through multiple sensory channels (audio, haptic, visual)")
	personalizedInterfaces := op("PersonalizedInterfacesType",
		"Customize interface based on individual user's experience and needs")
	conciseAudioInstructions := op("ConciseAudioInstructionsType",
		"Provide minimal, short, and precise audio instructions to minimize cognitive load")
	nonSpeechAudioCues := op("NonSpeechAudioCuesType",
		"Use earcons and non-verbal sounds to convey information")
	subMeterPositioning := op("SubMeterPositioningType",
		"Maintain positioning accuracy at or below specific threshold for safe navigation")
	sensorFusion := op("SensorFusionType",
		"Combine multiple sensor inputs (IMU, Wi-Fi, GPS, etc.) to improve accuracy")
	rapidTaskMastery := op("RapidTaskMasteryType",
		"Design interface to enable users to reach performance saturation within minimal repetitions")

	// ------------------------------------------------------------------
	// Softgoal role classes: the instance-role hierarchy mirrors the
	// type-label hierarchy, one role class per label.
	// ------------------------------------------------------------------

	nfrRole := func(name string, typeRef *TypeNode) *TypeNode {
		return b.roleType(name, nfrSoftgoal, nfrSoftgoalMeta, typeRef)
	}
	opRole := func(name string, typeRef *TypeNode) *TypeNode {
		return b.roleType(name, operationalizingSoftgoal, operationalizingSoftgoalMeta, typeRef)
	}

	nfrRole("PerformanceSoftgoal", performance)
	timePerformanceSoftgoal := nfrRole("TimePerformanceSoftgoal", timePerformance)
	nfrRole("SpacePerformanceSoftgoal", spacePerformance)
	nfrRole("ResponsivenessPerformanceSoftgoal", responsivenessPerformance)
	nfrRole("CPUUtilizationSoftgoal", cpuUtilization)
	nfrRole("MemoryUsageSoftgoal", memoryUsage)
	nfrRole("DiskTimeSoftgoal", diskTime)
	nfrRole("NetworkThroughputSoftgoal", networkThroughput)
	nfrRole("GPUUtilizationSoftgoal", gpuUtilization)
	nfrRole("SecuritySoftgoal", security)
	confidentialitySoftgoal := nfrRole("ConfidentialitySoftgoal", confidentiality)
	nfrRole("IntegritySoftgoal", integrity)
	nfrRole("AvailabilitySoftgoal", availability)
	nfrRole("UsabilitySoftgoal", usability)
	nfrRole("ReliabilitySoftgoal", reliability)
	nfrRole("MaintainabilitySoftgoal", maintainability)
	nfrRole("AccuracySoftgoal", accuracy)
	nfrRole("AdaptabilitySoftgoal", adaptability)
	nfrRole("BiasSoftgoal", bias)
	nfrRole("CompletenessSoftgoal", completeness)
	nfrRole("ComplexitySoftgoal", complexity)
	nfrRole("ConsistencySoftgoal", consistency)
	nfrRole("CorrectnessSoftgoal", correctness)
	nfrRole("DomainAdaptationSoftgoal", domainAdaptation)
	nfrRole("EfficiencySoftgoal", efficiency)
	nfrRole("EthicsSoftgoal", ethics)
	nfrRole("ExplainabilitySoftgoal", explainability)
	nfrRole("FairnessSoftgoal", fairness)
	nfrRole("FaultToleranceSoftgoal", faultTolerance)
	nfrRole("FlexibilitySoftgoal", flexibility)
	nfrRole("InterpretabilitySoftgoal", interpretability)
	nfrRole("InteroperabilitySoftgoal", interoperability)
	nfrRole("JustifiabilitySoftgoal", justifiability)
	nfrRole("PortabilitySoftgoal", portability)
	nfrRole("PrivacySoftgoal", privacy)
	nfrRole("RepeatabilitySoftgoal", repeatability)
	nfrRole("RetrainabilitySoftgoal", retrainability)
	nfrRole("ReproducibilitySoftgoal", reproducibility)
	nfrRole("ReusabilitySoftgoal", reusability)
	nfrRole("SafetySoftgoal", safety)
	nfrRole("ScalabilitySoftgoal", scalability)
	nfrRole("TestabilitySoftgoal", testability)
	nfrRole("TransparencySoftgoal", transparency)
	nfrRole("TraceabilitySoftgoal", traceability)
	nfrRole("TrustSoftgoal", trust)
	nfrRole("LegalComplianceSoftgoal", legalCompliance)
	nfrRole("LookFeelSoftgoal", lookFeel)
	nfrRole("RecoverabilitySoftgoal", recoverability)
	nfrRole("DiagnosabilitySoftgoal", diagnosability)
	nfrRole("CompatibilitySoftgoal", compatibility)
	nfrRole("DeterministicBehaviorSoftgoal", deterministicBehavior)
	nfrRole("LearnabilitySoftgoal", learnability)
	nfrRole("MemorabilitySoftgoal", memorability)
	nfrRole("ErrorPreventionSoftgoal", errorPrevention)
	nfrRole("SatisfactionSoftgoal", satisfaction)

	opRole("IndexingSoftgoal", indexing)
	opRole("CachingSoftgoal", caching)
	encryptionSoftgoal := opRole("EncryptionSoftgoal", encryption)
	b.roleType("SymmetricKeyEncryptionSoftgoal", encryptionSoftgoal, operationalizingSoftgoalMeta, symmetricKeyEncryption)
	publicKeyEncryptionSoftgoal := b.roleType("PublicKeyEncryptionSoftgoal", encryptionSoftgoal, operationalizingSoftgoalMeta, publicKeyEncryption)
	b.roleType("RSAEncryptionSoftgoal", publicKeyEncryptionSoftgoal, operationalizingSoftgoalMeta, rsaEncryption)
	opRole("AuditingSoftgoal", auditing)
	opRole("ExceptionHandlingSoftgoal", exceptionHandling)
	opRole("SearchSoftgoal", search)
	opRole("DisplaySoftgoal", display)
	opRole("RefreshSoftgoal", refresh)
	opRole("LogSoftgoal", logOp)
	opRole("AuthorizationSoftgoal", authorization)
	opRole("AuthenticationSoftgoal", authentication)
	opRole("AccessRuleValidationSoftgoal", accessRuleValidation)
	opRole("IdentificationSoftgoal", identification)
	opRole("SyncSoftgoal", syncOp)
	opRole("MonitorSoftgoal", monitor)
	opRole("ValidationSoftgoal", validation)
	opRole("NotifySoftgoal", notify)
	opRole("StoreSoftgoal", store)
	opRole("ExportSoftgoal", export)
	opRole("BackupSoftgoal", backup)
	opRole("CompressionSoftgoal", compression)
	opRole("LoadBalancingSoftgoal", loadBalancing)
	opRole("VirtualizationSoftgoal", virtualization)
	opRole("NetworkMonitoringSoftgoal", networkMonitoring)
	opRole("DataWarehouseSoftgoal", dataWarehouse)
	opRole("SimulationSoftgoal", simulation)
	opRole("EarlyWarningSoftgoal", earlyWarning)
	opRole("MultimodalFeedbackSoftgoal", multimodalFeedback)
	opRole("PersonalizedInterfacesSoftgoal", personalizedInterfaces)
	opRole("ConciseAudioInstructionsSoftgoal", conciseAudioInstructions)
	opRole("NonSpeechAudioCuesSoftgoal", nonSpeechAudioCues)
	opRole("SubMeterPositioningSoftgoal", subMeterPositioning)
	opRole("SensorFusionSoftgoal", sensorFusion)
	opRole("RapidTaskMasterySoftgoal", rapidTaskMastery)

	// Wire the well-known roots.
	r.Proposition = proposition
	r.Softgoal = softgoal
	r.NFRSoftgoal = nfrSoftgoal
	r.OperationalizingSoftgoal = operationalizingSoftgoal
	r.ClaimSoftgoal = claimSoftgoal
	r.SoftgoalType = softgoalType
	r.NFRSoftgoalType = nfrType
	r.OperationalizingSoftgoalType = opType
	r.ClaimSoftgoalType = claimType

	// ------------------------------------------------------------------
	// Decomposition methods. Competing methods per parent are normal;
	// each carries its own theory and its own claims.
	// ------------------------------------------------------------------

	b.method("Performance Type Decomposition 1", NFRDecomposition, performance,
		[]*TypeNode{timePerformance, spacePerformance},
		"Two-way decomposition of Performance into Time and Space")
	b.method("Performance Type Decomposition 2", NFRDecomposition, performance,
		[]*TypeNode{timePerformance, spacePerformance, responsivenessPerformance},
		"Three-way decomposition including user-perceived responsiveness")
	b.method("Performance Type Decomposition 3", NFRDecomposition, performance,
		[]*TypeNode{cpuUtilization, memoryUsage, diskTime, networkThroughput, gpuUtilization},
		"Five-way decomposition based on Windows Task Manager Performance tab: CPU, Memory, Disk, Network, GPU")
	b.method("Security Type Decomposition 1", NFRDecomposition, security,
		[]*TypeNode{confidentiality, integrity, availability},
		"Classic CIA triad decomposition")
	b.method("Authorization Type Decomposition 1", OperationalizationDecomposition, authorization,
		[]*TypeNode{identification, authentication, accessRuleValidation},
		"")
	b.method("ISO 25010 Usability Decomposition", NFRDecomposition, usability,
		[]*TypeNode{learnability, efficiency, memorability, errorPrevention, satisfaction},
		"ISO/IEC 25010 standard decomposition of Usability into five quality sub-characteristics")

	// ------------------------------------------------------------------
	// Claims: attribution records bound to the methods they justify.
	// ------------------------------------------------------------------

	b.claim("ClaimPerformanceTraditionalCS", traditionalCSPerformanceClaim,
		"Performance Decomposition", "Performance Type Decomposition 1")
	b.claim("ClaimPerformanceSmith", smithPerformanceClaim,
		"Performance Decomposition", "Performance Type Decomposition 2")
	b.claim("ClaimSecurityCIA", ciaTriadClaim,
		"Security Decomposition", "Security Type Decomposition 1")
	b.claim("ClaimPerformanceWindows", windowsTaskManagerClaim,
		"Performance Decomposition", "Performance Type Decomposition 3")
	b.claim("ClaimEncryptionTypes", wikipediaEncryptionTypesClaim,
		"Encryption Sub-classes")
	b.claim("ClaimUsabilityISO25010", iso25010UsabilityClaim,
		"Usability Decomposition", "ISO 25010 Usability Decomposition")
	b.claim("ClaimEarlyWarningSafety", manduchiSafetyClaim, "EarlyWarning")
	b.claim("ClaimMultimodalUsability", manduchiUsabilityClaim, "MultimodalFeedback")
	b.claim("ClaimPersonalizedUsability", assistUsabilityClaim, "PersonalizedInterfaces")
	b.claim("ClaimConciseAudioUsability", pmcCognitiveLoadClaim, "ConciseAudioInstructions")
	b.claim("ClaimNonSpeechUsability", pmcReceptivityClaim, "NonSpeechAudioCues")
	b.claim("ClaimPositioningSafety", sensorsSafetyClaim, "PositioningAccuracy")
	b.claim("ClaimSensorFusionAccuracy", pouloseSensorFusionClaim, "SensorFusion")
	b.claim("ClaimRapidMasteryLearnability", nielsenLearnabilityClaim, "RapidTaskMastery")

	// ------------------------------------------------------------------
	// Ground instances (level 3): concrete occurrences from example
	// project contexts.
	// ------------------------------------------------------------------

	b.instance("APIResponseTimeNFR", timePerformanceSoftgoal,
		"API Response Time", PriorityCritical, LabelSatisficed,
		"API must respond within 200ms for 95th percentile")
	b.instance("UserPasswordStorageNFR", confidentialitySoftgoal,
		"User Password Storage", PriorityCritical, LabelSatisficed,
		"User passwords must be hashed using bcrypt with work factor 12")
	b.instance("PGPImplementation", publicKeyEncryptionSoftgoal,
		"Pretty Good Privacy (PGP)", PriorityMedium, LabelUnknown,
		"")

	// ------------------------------------------------------------------
	// Contribution edges. Names stay free-form on purpose: an edge may
	// reference a name the registry does not define (e.g. "Logging").
	// ------------------------------------------------------------------

	// Time performance
	b.contribution("IndexingToTimePerformance", "Indexing", "TimePerformance", Help)
	b.contribution("CachingToTimePerformance", "Caching", "TimePerformance", Help)
	b.contribution("EncryptionToTimePerformance", "Encryption", "TimePerformance", Hurt)
	b.contribution("CompressionToTimePerformance", "Compression", "TimePerformance", Help)
	b.contribution("NetworkMonitoringToTimePerformance", "NetworkMonitoring", "TimePerformance", Hurt) // packet inspection overhead

	// Space performance
	b.contribution("IndexingToSpacePerformance", "Indexing", "SpacePerformance", Help)
	b.contribution("CachingToSpacePerformance", "Caching", "SpacePerformance", Help)
	b.contribution("CompressionToSpacePerformance", "Compression", "SpacePerformance", Help)

	// Confidentiality
	b.contribution("AuthenticationToConfidentiality", "Authentication", "Confidentiality", Help)
	b.contribution("EncryptionToConfidentiality", "Encryption", "Confidentiality", Help)
	b.contribution("NetworkMonitoringToConfidentiality", "NetworkMonitoring", "Confidentiality", Help)
	b.contribution("AccessRuleValidationToConfidentiality", "AccessRuleValidation", "Confidentiality", Help)
	b.contribution("AuthorizationToConfidentiality", "Authorization", "Confidentiality", Help)

	// Security
	b.contribution("AuthenticationToSecurity", "Authentication", "Security", Help)
	b.contribution("EncryptionToSecurity", "Encryption", "Security", Help)
	b.contribution("NetworkMonitoringToSecurity", "NetworkMonitoring", "Security", Help)
	b.contribution("AuditingToSecurity", "Auditing", "Security", Help)

	// Integrity
	b.contribution("AuthenticationToIntegrity", "Authentication", "Integrity", Help)

	// Accuracy
	b.contribution("AuditingToAccuracy", "Auditing", "Accuracy", Help)
	b.contribution("ValidationToAccuracy", "Validation", "Accuracy", Help)
	b.contribution("ExceptionHandlingToAccuracy", "ExceptionHandling", "Accuracy", Help)
	b.contribution("SensorFusionToAccuracy", "SensorFusion", "Accuracy", Help)

	// Scalability
	b.contribution("LoadBalancingToScalability", "LoadBalancing", "Scalability", Help)

	// Consistency
	b.contribution("CachingToConsistency", "Caching", "Consistency", Hurt)

	// Portability
	b.contribution("VirtualizationToPortability", "Virtualization", "Portability", Help)

	// Diagnosability and recoverability
	b.contribution("LoggingToDiagnosability", "Logging", "Diagnosability", Help)
	b.contribution("BackupToRecoverability", "Backup", "Recoverability", Make)

	// Usability
	b.contribution("MultimodalFeedbackToUsability", "MultimodalFeedback", "Usability", Help)
	b.contribution("PersonalizedInterfacesToUsability", "PersonalizedInterfaces", "Usability", Help)
	b.contribution("ConciseAudioInstructionsToUsability", "ConciseAudioInstructions", "Usability", Help)
	b.contribution("NonSpeechAudioCuesToUsability", "NonSpeechAudioCues", "Usability", Help)

	// Safety
	b.contribution("EarlyWarningToSafety", "EarlyWarning", "Safety", Help)
	b.contribution("SubMeterPositioningToSafety", "SubMeterPositioning", "Safety", Help)

	// Learnability
	b.contribution("RapidTaskMasteryToLearnability", "RapidTaskMastery", "Learnability", Make)
}
